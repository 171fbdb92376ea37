package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ParamsNewLogger struct {
	Level      string
	Production bool
}

// New builds a JSON logger for production and a colored console logger otherwise.
// Both write to standard error.
func New(params *ParamsNewLogger) (*zap.Logger, error) {
	level, errLevel := zapcore.ParseLevel(params.Level)
	if errLevel != nil {
		return nil,
			fmt.Errorf("log level %q: %w", params.Level, errLevel)
	}

	var cfg zap.Config

	if params.Production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.Level = zap.NewAtomicLevelAt(level)

	return cfg.Build()
}
