// Package logging configures the process-wide slog logger. Diagnostics
// go to stderr so command output stays clean for piping.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs the default logger at the given level.
func Setup(level string) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
