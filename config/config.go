package config

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"naca/airfoil"
)

type Config struct {
	Server    Server
	LogLevel  log.Level
	Generator Generator
	Smoothing Smoothing
	Plot      Plot
	Session   Session
}

type Server struct {
	Addr            string
	Mode            string // gin 运行模式
	AllowAllOrigins bool   // websocket 跨域
}

type Generator struct {
	SampleCount    int
	MinSampleCount int
	MaxSampleCount int
}

type Smoothing struct {
	Enabled bool    // 请求未指定时的默认开关
	Factor  float64 // 光顺系数
}

// Plot 图片尺寸，单位英寸
type Plot struct {
	Width  float64
	Height float64
	Format string
}

type Session struct {
	HistorySize int
}

// Load reads the ini file at path. A missing or unreadable file yields
// the defaults together with the error so the caller can decide.
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return Default(), err
	}
	return loadCfg(file), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return loadCfg(ini.Empty())
}

func loadCfg(file *ini.File) *Config {
	level, err := log.ParseLevel(file.Section("log").Key("Level").MustString("info"))
	if err != nil {
		level = log.InfoLevel
	}

	cfg := &Config{
		Server: Server{
			Addr:            file.Section("server").Key("Addr").MustString(":9000"),
			Mode:            file.Section("server").Key("Mode").MustString("release"),
			AllowAllOrigins: file.Section("server").Key("AllowAllOrigins").MustBool(true),
		},
		LogLevel: level,
		Generator: Generator{
			SampleCount:    file.Section("generator").Key("SampleCount").MustInt(airfoil.DefaultSampleCount),
			MinSampleCount: file.Section("generator").Key("MinSampleCount").MustInt(50),
			MaxSampleCount: file.Section("generator").Key("MaxSampleCount").MustInt(400),
		},
		Smoothing: Smoothing{
			Enabled: file.Section("smoothing").Key("Enabled").MustBool(false),
			Factor:  file.Section("smoothing").Key("Factor").MustFloat64(airfoil.DefaultSmoothing),
		},
		Plot: Plot{
			Width:  file.Section("plot").Key("Width").MustFloat64(10),
			Height: file.Section("plot").Key("Height").MustFloat64(4),
			Format: file.Section("plot").Key("Format").MustString("png"),
		},
		Session: Session{
			HistorySize: file.Section("session").Key("HistorySize").MustInt(20),
		},
	}

	switch cfg.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		// gin.SetMode 遇到未知模式会 panic
		log.WithField("mode", cfg.Server.Mode).Warn("未知的运行模式，使用 release")
		cfg.Server.Mode = gin.ReleaseMode
	}

	g := &cfg.Generator
	if g.MinSampleCount < 2 {
		g.MinSampleCount = 2
	}
	if g.MaxSampleCount < g.MinSampleCount {
		g.MaxSampleCount = g.MinSampleCount
	}
	g.SampleCount = min(max(g.SampleCount, g.MinSampleCount), g.MaxSampleCount)
	if cfg.Session.HistorySize < 1 {
		cfg.Session.HistorySize = 1
	}
	return cfg
}
