package main

import (
	"github.com/osse101/RuneStatus_Go/internal/config"
	"github.com/osse101/RuneStatus_Go/internal/logger"
)

// initLogger installs the process-wide slog logger described by cfg
func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		logger.IsDevelopment(cfg.Environment),
	))
}
