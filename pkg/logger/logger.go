// Package logger builds the zap loggers used by services and commands.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production sugared logger tagged with the service name.
// It falls back to a no-op logger if zap cannot be configured.
func New(service string) *zap.SugaredLogger {
	return NewWithLevel(service, zapcore.InfoLevel)
}

// NewWithLevel is like New with an explicit minimum level.
func NewWithLevel(service string, level zapcore.Level) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]any{"service": service}

	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return log.Sugar()
}

// ParseLevel converts a level name such as "debug" or "warn" into a zap
// level. An empty name means info.
func ParseLevel(name string) (zapcore.Level, error) {
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(name)
}
