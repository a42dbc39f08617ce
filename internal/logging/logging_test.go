package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected logger instance")
	}
	_ = logger.Sync()
}

func TestNewConsole(t *testing.T) {
	for _, debug := range []bool{true, false} {
		logger, err := NewConsole(debug)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if logger == nil {
			t.Fatalf("expected logger instance")
		}
		if got := logger.Core().Enabled(zapcore.DebugLevel); got != debug {
			t.Fatalf("debug=%v: expected debug enablement to match, got %v", debug, got)
		}
		_ = logger.Sync()
	}
}
