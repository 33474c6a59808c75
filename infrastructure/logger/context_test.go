package logger_test

import (
	"context"
	"testing"

	"github.com/jonesrussell/mars-explorer/infrastructure/logger"
)

func TestFromContext_ReturnsStoredLogger(t *testing.T) {
	t.Parallel()

	base := mustTestLogger(t)
	enriched := base.With(logger.String("request_id", "abc-123"))

	ctx := logger.WithContext(context.Background(), enriched)
	if got := logger.FromContext(ctx); got != enriched {
		t.Error("FromContext did not return the stored logger")
	}
}

func TestFromContext_LastWriteWins(t *testing.T) {
	t.Parallel()

	first := mustTestLogger(t)
	second := mustTestLogger(t)

	ctx := logger.WithContext(context.Background(), first)
	ctx = logger.WithContext(ctx, second)

	if got := logger.FromContext(ctx); got != second {
		t.Error("FromContext returned the first logger, want the second")
	}
}

func TestFromContext_FallbackIsSharedAndUsable(t *testing.T) {
	t.Parallel()

	a := logger.FromContext(context.Background())
	b := logger.FromContext(context.Background())
	if a == nil {
		t.Fatal("FromContext on empty context returned nil")
	}
	if a != b {
		t.Error("fallback logger is not shared between calls")
	}

	// Below warn level these are filtered but must not panic.
	a.Debug("debug")
	a.Info("info")
	a.Warn("warn", logger.String("key", "value"))
}

func mustTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	l, err := logger.New(logger.Config{
		Level:       "warn",
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return l
}
