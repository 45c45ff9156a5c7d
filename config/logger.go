package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger. Production gets the JSON encoder at
// the configured level; anything else gets the colored development config.
func NewLogger(cfg Config) (*zap.SugaredLogger, error) {
	level := zapcore.InfoLevel
	switch cfg.LogLevel {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	if cfg.Environment == "production" {
		c := zap.NewProductionConfig()
		c.Level = zap.NewAtomicLevelAt(level)
		logger, err := c.Build()
		if err != nil {
			return nil, err
		}
		return logger.Sugar(), nil
	}

	c := zap.NewDevelopmentConfig()
	c.Level = zap.NewAtomicLevelAt(level)
	c.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, err := c.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
