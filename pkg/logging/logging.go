// Package logging builds the zap loggers used by the CLI and the TUI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where log records go.
type Options struct {
	// Path is a log file. When empty, records go to stderr unless Quiet is set.
	Path string
	// Debug lowers the level to debug.
	Debug bool
	// Quiet discards records when no Path is configured. The TUI owns the
	// terminal and must not share stderr.
	Quiet bool
}

// New builds a logger for opts.
func New(opts Options) (*zap.Logger, error) {
	if opts.Path == "" {
		if opts.Quiet {
			return zap.NewNop(), nil
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if opts.Debug {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		cfg.DisableStacktrace = true
		cfg.EncoderConfig.TimeKey = ""
		return cfg.Build()
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log directory: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{opts.Path}
	cfg.ErrorOutputPaths = []string{opts.Path}
	if opts.Debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// Must is New for callers that cannot continue without a logger; it falls
// back to a no-op logger instead of failing.
func Must(opts Options) *zap.Logger {
	l, err := New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		return zap.NewNop()
	}
	return l
}
