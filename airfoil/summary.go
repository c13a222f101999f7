package airfoil

import "math"

// Summary 翼型几何特征
type Summary struct {
	Designation       string  `json:"designation"`
	MaxThickness      float64 `json:"max_thickness"`
	MaxThicknessAt    float64 `json:"max_thickness_at"`
	MaxCamber         float64 `json:"max_camber"`
	MaxCamberAt       float64 `json:"max_camber_at"`
	Area              float64 `json:"area"`
	TrailingEdgeGap   float64 `json:"trailing_edge_gap"`
	LeadingEdgeRadius float64 `json:"leading_edge_radius"` // 1.1019 t²
}

// Summarize measures cs. Thickness is the vertical distance between the
// surfaces at matching stations; the area is that of the closed export
// profile.
func Summarize(params Parameters, cs *CurveSet) Summary {
	s := Summary{
		Designation:       params.Designation(),
		LeadingEdgeRadius: 1.1019 * params.T * params.T,
	}
	for i := 0; i < cs.Len(); i++ {
		if th := cs.Upper[i].Y - cs.Lower[i].Y; th > s.MaxThickness {
			s.MaxThickness = th
			s.MaxThicknessAt = cs.X[i]
		}
		if yc := cs.YCamber[i]; math.Abs(yc) > math.Abs(s.MaxCamber) {
			s.MaxCamber = yc
			s.MaxCamberAt = cs.X[i]
		}
	}
	if n := cs.Len(); n > 0 {
		te := cs.Upper[n-1]
		tl := cs.Lower[n-1]
		s.TrailingEdgeGap = math.Hypot(te.X-tl.X, te.Y-tl.Y)
	}
	s.Area = Area(ExportProfile(cs))
	return s
}

// Area is the shoelace area of the closed polygon through profile.
// ExportProfile runs counter-clockwise, which yields a positive value.
func Area(profile []Point) float64 {
	var sum float64
	for i := range profile {
		a := profile[i]
		b := profile[(i+1)%len(profile)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}
