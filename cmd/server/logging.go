package main

import (
	"designers/internal/config"
	"strings"

	"github.com/sirupsen/logrus"
)

// setupLogging 配置全局 logrus
func setupLogging(cfg config.Config) {
	if strings.EqualFold(strings.TrimSpace(cfg.LogFormat), "text") {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(strings.TrimSpace(cfg.LogLevel))
	if err != nil {
		logrus.WithField("log_level", cfg.LogLevel).Warn("unknown log level, falling back to info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
