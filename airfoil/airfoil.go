// Package airfoil 生成 NACA 四位数翼型的几何坐标。
//
// 所有长度均为弦长的分数（弦长 = 1.0）。
package airfoil

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrSampleCount    = errors.New("airfoil: sample count must be at least 2")
	ErrCamberPosition = errors.New("airfoil: camber position must lie strictly between 0 and 1 when camber is non-zero")
	ErrThickness      = errors.New("airfoil: thickness must be a finite non-negative number")
)

// 滑块的默认值
const (
	DefaultM           = 0.02
	DefaultP           = 0.4
	DefaultT           = 0.12
	DefaultSampleCount = 200
)

// Parameters 翼型参数
type Parameters struct {
	M           float64 // 最大弯度
	P           float64 // 最大弯度位置
	T           float64 // 最大厚度
	SampleCount int     // 弦向采样点数
}

// Designation returns the four-digit name, e.g. "NACA 2412".
// The thickness group is always zero padded to two digits.
func (p Parameters) Designation() string {
	return fmt.Sprintf("NACA %d%d%02d",
		int(math.Round(p.M*100)),
		int(math.Round(p.P*10)),
		int(math.Round(p.T*100)))
}

func (p Parameters) String() string {
	return fmt.Sprintf("%s (m=%g p=%g t=%g n=%d)", p.Designation(), p.M, p.P, p.T, p.SampleCount)
}

// Validate reports parameter combinations the closed-form laws cannot
// evaluate. Slider ranges are not enforced here.
func (p Parameters) Validate() error {
	if p.SampleCount < 2 {
		return fmt.Errorf("%w: got %d", ErrSampleCount, p.SampleCount)
	}
	if math.IsNaN(p.M) || math.IsInf(p.M, 0) || math.IsNaN(p.P) || math.IsInf(p.P, 0) {
		return fmt.Errorf("%w: m=%g p=%g", ErrCamberPosition, p.M, p.P)
	}
	if math.IsNaN(p.T) || math.IsInf(p.T, 0) || p.T < 0 {
		return fmt.Errorf("%w: got %g", ErrThickness, p.T)
	}
	if p.M != 0 && (p.P <= 0 || p.P >= 1) {
		return fmt.Errorf("%w: m=%g p=%g", ErrCamberPosition, p.M, p.P)
	}
	return nil
}
