// Package logging builds the diagnostic logger. Diagnostics go to stderr and
// are separate from the styled console output the generators print.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// New returns a text logger writing to w at the named level. Every record
// carries the run_id of this invocation.
func New(w io.Writer, level string) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(h).With(slog.String("run_id", uuid.NewString()))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name to a slog.Level. Unknown names map to warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
