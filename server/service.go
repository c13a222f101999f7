package server

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"

	"naca/airfoil"
	"naca/config"
	"naca/exporter"
	"naca/model"
	"naca/render"
)

var ErrSampleRange = errors.New("sample count out of range")

// Service 串联 生成 -> 平滑 -> 导出/绘图，每次请求都从头计算
type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// Parameters resolves q against the configured defaults and sample
// count range.
func (s *Service) Parameters(q model.AirfoilQuery) (airfoil.Parameters, error) {
	params := q.Parameters(s.cfg.Generator.SampleCount)
	g := s.cfg.Generator
	if params.SampleCount < g.MinSampleCount || params.SampleCount > g.MaxSampleCount {
		return params, fmt.Errorf("%w: n=%d not in [%d, %d]", ErrSampleRange, params.SampleCount, g.MinSampleCount, g.MaxSampleCount)
	}
	return params, nil
}

// Curves generates and, if requested, smooths the section for q. raw is
// the generated set; cs is the set to serve and equals raw when no
// smoothing was applied.
func (s *Service) Curves(q model.AirfoilQuery) (params airfoil.Parameters, raw, cs *airfoil.CurveSet, err error) {
	if params, err = s.Parameters(q); err != nil {
		return params, nil, nil, err
	}
	if raw, err = airfoil.Generate(params); err != nil {
		return params, nil, nil, err
	}
	if q.SmoothOr(s.cfg.Smoothing.Enabled) {
		return params, raw, airfoil.SmoothWith(raw, s.cfg.Smoothing.Factor), nil
	}
	return params, raw, raw, nil
}

func (s *Service) Geometry(q model.AirfoilQuery) (*model.Geometry, error) {
	params, raw, cs, err := s.Curves(q)
	if err != nil {
		return nil, err
	}

	smooth := cs != raw
	var dev float64
	if smooth {
		if dev, err = airfoil.MaxDeviation(raw, cs); err != nil {
			return nil, err
		}
	}

	log.WithFields(log.Fields{
		"designation": params.Designation(),
		"n":           params.SampleCount,
		"smooth":      smooth,
		"deviation":   dev,
	}).Debug("生成翼型")

	return &model.Geometry{
		Designation: params.Designation(),
		Smoothed:    smooth,
		Deviation:   dev,
		X:           cs.X,
		Camber:      cs.YCamber,
		Upper:       cs.Upper,
		Lower:       cs.Lower,
		Summary:     airfoil.Summarize(params, cs),
	}, nil
}

func (s *Service) Dat(q model.AirfoilQuery) (*model.DatFile, error) {
	params, _, cs, err := s.Curves(q)
	if err != nil {
		return nil, err
	}
	name := params.Designation()
	return &model.DatFile{
		FileName: exporter.FileName(name),
		MIMEType: exporter.MIMEType,
		Content:  exporter.ToDat(cs, name),
	}, nil
}

// Plot renders the chart for q; an empty format uses the configured one.
func (s *Service) Plot(w io.Writer, q model.AirfoilQuery, format string) error {
	params, _, cs, err := s.Curves(q)
	if err != nil {
		return err
	}
	p, err := render.Plot(cs, params.Designation())
	if err != nil {
		return err
	}
	if format == "" {
		format = s.cfg.Plot.Format
	}
	return render.Write(w, p, render.Options{
		Width:  vg.Length(s.cfg.Plot.Width) * vg.Inch,
		Height: vg.Length(s.cfg.Plot.Height) * vg.Inch,
		Format: format,
	})
}
