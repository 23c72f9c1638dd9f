// Package log configures structured logging for tablero using log/slog.
package log

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a config log level name to a slog.Level. Unknown names
// fall back to INFO.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// Setup configures the default slog logger and returns it.
//
//   - quiet mode:   only WARN and ERROR messages
//   - verbose mode: DEBUG and above
//   - otherwise:    the configured level
//
// Quiet wins when both flags are set. Output is written to w using
// slog.TextHandler.
func Setup(w io.Writer, verbose, quiet bool, level string) *slog.Logger {
	lvl := ParseLevel(level)
	switch {
	case quiet:
		lvl = slog.LevelWarn
	case verbose:
		lvl = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
