package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	"naca/config"
	"naca/server"
)

func main() {
	confPath := flag.String("conf", "conf/config.ini", "path to the ini configuration")
	flag.Parse()

	cfg, err := config.Load(*confPath)
	if err != nil {
		log.WithError(err).Warn("配置文件读取错误，使用默认配置")
	}
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	s := server.NewServer(cfg)
	if err := s.Serve(); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
