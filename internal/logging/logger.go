// Package logging exposes a zap logger with named levels. User-facing
// output goes through internal/ui; this logger carries debug traces.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// LevelDebug enables dispatch and discovery traces.
	LevelDebug = "debug"

	// LevelInfo sets the log level to info.
	LevelInfo = "info"

	// LevelNone disables logging.
	LevelNone = "none"
)

// GetLogger returns a zap logger writing to stderr at the given level.
func GetLogger(level string) (*zap.Logger, error) {
	if level == LevelNone || level == "" {
		return zap.NewNop(), nil
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	return cfg.Build()
}
