package model

import "naca/airfoil"

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 消息类型
const (
	// 请求
	TypeParams  = "params"
	TypeExport  = "export"
	TypeHistory = "history"

	// 响应
	TypeGeometry = "geometry"
	TypeDat      = "dat"
	TypeError    = "error"
)

// AirfoilQuery 滑块参数。指针字段用于区分未填与 0。
type AirfoilQuery struct {
	M      *float64 `form:"m" json:"m" binding:"omitempty,gte=0,lte=0.09"`
	P      *float64 `form:"p" json:"p" binding:"omitempty,gte=0,lte=0.9"`
	T      *float64 `form:"t" json:"t" binding:"omitempty,gte=0.01,lte=0.3"`
	N      *int     `form:"n" json:"n" binding:"omitempty,gte=2"`
	Smooth *bool    `form:"smooth" json:"smooth"`
}

// Parameters fills unset fields from the slider defaults and n.
func (q AirfoilQuery) Parameters(n int) airfoil.Parameters {
	params := airfoil.Parameters{
		M:           airfoil.DefaultM,
		P:           airfoil.DefaultP,
		T:           airfoil.DefaultT,
		SampleCount: n,
	}
	if q.M != nil {
		params.M = *q.M
	}
	if q.P != nil {
		params.P = *q.P
	}
	if q.T != nil {
		params.T = *q.T
	}
	if q.N != nil {
		params.SampleCount = *q.N
	}
	return params
}

// SmoothOr returns the requested smoothing switch or def.
func (q AirfoilQuery) SmoothOr(def bool) bool {
	if q.Smooth == nil {
		return def
	}
	return *q.Smooth
}

// Geometry 几何计算结果
type Geometry struct {
	Designation string          `json:"designation"`
	Smoothed    bool            `json:"smoothed"`
	Deviation   float64         `json:"deviation"` // 平滑前后最大偏差
	X           []float64       `json:"x"`
	Camber      []float64       `json:"camber"`
	Upper       []airfoil.Point `json:"upper"`
	Lower       []airfoil.Point `json:"lower"`
	Summary     airfoil.Summary `json:"summary"`
}

// DatFile .dat 导出内容
type DatFile struct {
	FileName string `json:"file_name"`
	MIMEType string `json:"mime_type"`
	Content  string `json:"content"`
}

// HistoryItem 会话内的一次请求
type HistoryItem struct {
	Designation string       `json:"designation"`
	Query       AirfoilQuery `json:"query"`
}
