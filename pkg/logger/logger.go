package logger

import (
	"io"
	"log/slog"
	"strings"
)

func LevelFromEnv(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New writes JSON records to w; component is attached to every record when set.
func New(w io.Writer, level slog.Level, component ...string) *slog.Logger {
	l := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	if len(component) > 0 && component[0] != "" {
		l = l.With("component", component[0])
	}
	return l
}
