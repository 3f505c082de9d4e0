package logger

import (
	"io"
	"log/slog"
)

// NewTestHandler discards all output. Tests that need to assert on log
// records should plug in their own handler instead.
func NewTestHandler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: level})
}
