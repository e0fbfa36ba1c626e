package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestFileLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "dayplan.log")
	l, err := New(Options{Path: path})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	l.Warn("malformed snapshot", zap.String("key", "todoItems"))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"key":"todoItems"`) {
		t.Fatalf("expected structured field in log, got %s", data)
	}
}

func TestQuietWithoutPathIsNop(t *testing.T) {
	l, err := New(Options{Quiet: true})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if l.Core().Enabled(zap.ErrorLevel) {
		t.Fatalf("expected no-op logger")
	}
}

func TestStderrLoggerDefaultsToWarn(t *testing.T) {
	l, err := New(Options{})
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if l.Core().Enabled(zap.InfoLevel) {
		t.Fatalf("expected info to be disabled by default")
	}
	dbg := Must(Options{Debug: true})
	if !dbg.Core().Enabled(zap.DebugLevel) {
		t.Fatalf("expected debug level when requested")
	}
}
