package logger

import (
	"log/slog"
	"os"
)

var defaultLogger *slog.Logger

// initializes the logger based on environment
func init() {
	env := os.Getenv("ENVIRONMENT")

	var handler slog.Handler

	if env == "production" {
		// production: JSON output for structured logging
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		// development: human-readable text output
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	defaultLogger = slog.New(handler)
}

// logs a debug message
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// logs an info message
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// logs a warning message
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// logs an error message
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// logs an error with the error attached as a field
func ErrorErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	defaultLogger.Error(msg, args...)
}

// logs a fatal error and exits
func Fatal(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
	os.Exit(1)
}
