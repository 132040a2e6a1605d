// Package logging builds the slog loggers shared by the CLI and the daemon.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

const (
	JSONFormat = "json"
	TextFormat = "text"
)

// New creates a logger writing to w. Unknown formats fall back to text and
// unknown levels to info.
func New(w io.Writer, level, format string) *slog.Logger {
	return slog.New(NewHandler(w, level, format))
}

// NewHandler creates a [slog.Handler] from level and format strings.
func NewHandler(w io.Writer, level, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	switch strings.ToLower(format) {
	case JSONFormat:
		return slog.NewJSONHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "error", "fatal", "panic":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "debug", "trace":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
