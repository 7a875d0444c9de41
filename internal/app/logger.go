// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/tour-service/config"
	"github.com/guttosm/tour-service/internal/logger"
)

// InitializeLogger initializes the global zerolog logger.
func InitializeLogger(cfg config.LoggingConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
