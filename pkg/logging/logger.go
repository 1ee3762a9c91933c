package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	EnvLevel  = "CODECHECK_LOG_LEVEL"
	EnvFormat = "CODECHECK_LOG_FORMAT"
)

// NewLoggerFromEnv creates a logger writing to w using environment variables
// CODECHECK_LOG_LEVEL: debug|info|warn|error (default: warn)
// CODECHECK_LOG_FORMAT: text|json (default: text)
// A nil w means stderr.
func NewLoggerFromEnv(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelWarn
	format := "text"

	if levelStr := os.Getenv(EnvLevel); levelStr != "" {
		level = parseLogLevel(levelStr)
	}

	if formatStr := os.Getenv(EnvFormat); formatStr != "" {
		format = strings.ToLower(formatStr)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
