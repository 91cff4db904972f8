package utils

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewApplicationLoggerFollowsSharedLevel(t *testing.T) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger, loggerError := NewApplicationLogger(level)
	if loggerError != nil {
		t.Fatalf("NewApplicationLogger error: %v", loggerError)
	}
	defer func() { _ = logger.Sync() }()

	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug should be disabled at info level")
	}
	level.SetLevel(zapcore.DebugLevel)
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug should follow the shared level")
	}
}

func TestGetApplicationVersionPrefersLinkedVersion(t *testing.T) {
	previous := Version
	t.Cleanup(func() { Version = previous })

	Version = "v9.9.9"
	if version := GetApplicationVersion(); version != "v9.9.9" {
		t.Fatalf("expected linked version, got %s", version)
	}
}
