// Package render 绘制翼型曲线图
package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"naca/airfoil"
)

var (
	upperColor  = color.RGBA{B: 255, A: 255}
	lowerColor  = color.RGBA{R: 255, A: 255}
	camberColor = color.Black
	gridColor   = color.Gray{Y: 220}
)

// Options 输出尺寸与格式
type Options struct {
	Width  vg.Length
	Height vg.Length
	Format string // png / svg
}

var DefaultOptions = Options{
	Width:  10 * vg.Inch,
	Height: 4 * vg.Inch,
	Format: "png",
}

// Formats lists the encodings Write accepts.
var Formats = map[string]string{
	"png": "image/png",
	"svg": "image/svg+xml",
}

// Plot builds the chart of cs: both surfaces, the dashed mean camber
// line, a legend and a light grid, titled with designation.
func Plot(cs *airfoil.CurveSet, designation string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = designation
	p.X.Label.Text = "x / Chord"
	p.Y.Label.Text = "y / Chord"

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	upper, err := plotter.NewLine(xys(cs.Upper))
	if err != nil {
		return nil, fmt.Errorf("upper surface: %w", err)
	}
	upper.LineStyle.Color = upperColor
	upper.LineStyle.Width = vg.Points(1.5)

	lower, err := plotter.NewLine(xys(cs.Lower))
	if err != nil {
		return nil, fmt.Errorf("lower surface: %w", err)
	}
	lower.LineStyle.Color = lowerColor
	lower.LineStyle.Width = vg.Points(1.5)

	camberPts := make(plotter.XYs, cs.Len())
	for i := range camberPts {
		camberPts[i].X = cs.X[i]
		camberPts[i].Y = cs.YCamber[i]
	}
	camber, err := plotter.NewLine(camberPts)
	if err != nil {
		return nil, fmt.Errorf("camber line: %w", err)
	}
	camber.LineStyle.Color = camberColor
	camber.LineStyle.Width = vg.Points(1)
	camber.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	p.Add(upper, lower, camber)
	p.Legend.Add("Upper Surface", upper)
	p.Legend.Add("Lower Surface", lower)
	p.Legend.Add("Mean Camber Line", camber)
	p.Legend.Top = true

	return p, nil
}

// Write encodes p according to opts. The y range is stretched so that a
// chord unit has about the same length on both axes.
func Write(w io.Writer, p *plot.Plot, opts Options) error {
	if _, ok := Formats[opts.Format]; !ok {
		return fmt.Errorf("render: unsupported format %q", opts.Format)
	}
	equalAspect(p, opts)

	wt, err := p.WriterTo(opts.Width, opts.Height, opts.Format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func equalAspect(p *plot.Plot, opts Options) {
	const pad = 0.05
	xmin, xmax := -pad, 1+pad
	p.X.Min, p.X.Max = xmin, xmax

	span := (xmax - xmin) * float64(opts.Height) / float64(opts.Width)
	mid := (p.Y.Min + p.Y.Max) / 2
	if need := p.Y.Max - p.Y.Min; need > span {
		span = need
	}
	p.Y.Min, p.Y.Max = mid-span/2, mid+span/2
}

func xys(pts []airfoil.Point) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		out[i].X = pt.X
		out[i].Y = pt.Y
	}
	return out
}
