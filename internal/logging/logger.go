// Package logging builds the categorized zap loggers used across termhack.
// Categories can be switched off individually in the logging config; a
// disabled category gets a no-op logger.
package logging

import (
	"fmt"

	"termhack/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup, config loading
	CategorySession  Category = "session"  // Interactive command loop
	CategorySimulate Category = "simulate" // Batch simulation
	CategoryUI       Category = "ui"       // Terminal UI
)

// Logger hands out per-category child loggers.
type Logger struct {
	base *zap.Logger
	cfg  config.LoggingConfig
}

// New builds a Logger from cfg. verbose forces debug level.
func New(cfg config.LoggingConfig, verbose bool) (*Logger, error) {
	level, err := cfg.ZapLevel()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	if cfg.Format == "json" {
		zc.Encoding = "json"
	}
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	if cfg.File != "" {
		zc.OutputPaths = []string{cfg.File}
	}

	base, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return &Logger{base: base, cfg: cfg}, nil
}

// Wrap adapts an existing zap logger, with every category enabled.
func Wrap(base *zap.Logger) *Logger {
	return &Logger{base: base}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return Wrap(zap.NewNop())
}

// Get returns the logger for a category.
func (l *Logger) Get(category Category) *zap.Logger {
	if l == nil || !l.cfg.IsCategoryEnabled(string(category)) {
		return zap.NewNop()
	}
	return l.base.Named(string(category))
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.base.Sync()
}
