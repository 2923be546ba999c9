package log

import (
	"log/slog"
	"os"
)

// Logger is the global logger instance
var Logger *slog.Logger

var level = new(slog.LevelVar)

// InitLogger initializes the global logger
// It sets the log level to Debug if TOJIRU_DEBUG is set
func InitLogger() {
	level.Set(slog.LevelInfo)
	if os.Getenv("TOJIRU_DEBUG") != "" {
		level.Set(slog.LevelDebug)
	}

	opts := &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	Logger = slog.New(handler)
	slog.SetDefault(Logger)
}

// init initializes the logger when the package is imported
func init() {
	InitLogger()
}

// SetDebug lowers the level threshold to Debug after startup, used by the
// --debug flag
func SetDebug() {
	level.Set(slog.LevelDebug)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
