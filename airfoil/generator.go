package airfoil

import (
	"math"
)

// Point 弦长归一化坐标
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CurveSet 一次生成的全部曲线，生成后不再修改
type CurveSet struct {
	X       []float64 // 余弦分布的弦向站位
	YCamber []float64 // 中弧线
	Upper   []Point   // 上表面，前缘 -> 后缘
	Lower   []Point   // 下表面，前缘 -> 后缘
}

// Len returns the number of chordwise stations.
func (cs *CurveSet) Len() int {
	return len(cs.X)
}

// Stations returns n cosine-spaced stations over [0, 1].
// Points cluster at both the leading and the trailing edge.
func Stations(n int) []float64 {
	x := make([]float64, n)
	if n == 1 {
		return x
	}
	for i := 0; i < n; i++ {
		x[i] = 0.5 * (1 - math.Cos(float64(i)/float64(n-1)*math.Pi))
	}
	return x
}

// Thickness is the half thickness of the symmetric four-digit section.
// The trailing edge (x = 1) keeps its small finite thickness.
func Thickness(x, t float64) float64 {
	return t / 0.2 * (0.2969*math.Sqrt(x) - 0.1260*x - 0.3516*x*x + 0.2843*x*x*x - 0.1015*x*x*x*x)
}

// Camber returns the mean camber line ordinate and its slope at x.
// The forward branch holds for x < p, the aft branch for x >= p.
func Camber(x, m, p float64) (yc, slope float64) {
	if m == 0 {
		return 0, 0
	}
	if x < p {
		k := m / (p * p)
		return k * (2*p*x - x*x), 2 * k * (p - x)
	}
	k := m / ((1 - p) * (1 - p))
	return k * ((1 - 2*p) + 2*p*x - x*x), 2 * k * (p - x)
}

// Generate computes the camber line and both surfaces for params.
// The thickness is laid off normal to the camber line.
func Generate(params Parameters) (*CurveSet, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	n := params.SampleCount
	cs := &CurveSet{
		X:       Stations(n),
		YCamber: make([]float64, n),
		Upper:   make([]Point, n),
		Lower:   make([]Point, n),
	}
	for i, x := range cs.X {
		z := Thickness(x, params.T)
		yc, slope := Camber(x, params.M, params.P)
		sin, cos := math.Sincos(math.Atan(slope))

		cs.YCamber[i] = yc
		cs.Upper[i] = Point{X: x - z*sin, Y: yc + z*cos}
		cs.Lower[i] = Point{X: x + z*sin, Y: yc - z*cos}
	}
	return cs, nil
}

// ExportProfile walks the upper surface from the trailing edge to the
// leading edge and continues along the lower surface back to the
// trailing edge. The leading edge point appears once.
func ExportProfile(cs *CurveSet) []Point {
	n := cs.Len()
	if n == 0 {
		return nil
	}
	profile := make([]Point, 0, 2*n-1)
	for i := n - 1; i >= 0; i-- {
		profile = append(profile, cs.Upper[i])
	}
	return append(profile, cs.Lower[1:]...)
}
