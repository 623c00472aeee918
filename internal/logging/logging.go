// Package logging builds the leveled slog loggers used by the CLI.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// timeFormat keeps log lines short; dates are rarely useful in a CLI run.
const timeFormat = "15:04:05.000"

// LookupLevel maps a level name to a slog level. Names are case-insensitive
// and "warning" is accepted for warn.
func LookupLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// ParseLevel parses a log level string, falling back to info.
func ParseLevel(s string) slog.Level {
	level, _ := LookupLevel(s)
	return level
}

// New creates a text logger writing records at or above level to w.
func New(level slog.Level, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.String(slog.TimeKey, a.Value.Time().Format(timeFormat))
			}
			return a
		},
	}))
}

// Discard returns a logger that discards all output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}
