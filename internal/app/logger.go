package app

import (
	"github.com/guttosm/xslt-messages/config"
	"github.com/guttosm/xslt-messages/internal/logger"
)

// InitializeLogger initializes the global zerolog logger.
func InitializeLogger(cfg config.LogConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.Pretty)
}
