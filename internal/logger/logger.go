// Package logger wraps zap with level configuration for the application.
package logger

import (
	"go.uber.org/zap"
)

// Logger carries the configured zap logger.
type Logger struct {
	// Log is the underlying structured logger. It is a no-op until Init
	// runs.
	Log *zap.Logger
}

// New returns a Logger with a no-op backend.
func New() *Logger {
	return &Logger{Log: zap.NewNop()}
}

// Init builds the production logger at the given level and replaces the
// no-op backend. Unknown level strings are an error.
func (l *Logger) Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	log, err := cfg.Build()
	if err != nil {
		return err
	}
	l.Log = log
	return nil
}
