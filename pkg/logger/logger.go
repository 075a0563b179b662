package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu  sync.RWMutex
	log = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

// ParseLevel converts a level string (case-insensitive) into a slog.Level.
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init replaces the package logger with a text handler at the given level.
func Init(level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug(msg string, args ...any) { current().Debug(msg, args...) }
func Info(msg string, args ...any)  { current().Info(msg, args...) }
func Warn(msg string, args ...any)  { current().Warn(msg, args...) }
func Error(msg string, args ...any) { current().Error(msg, args...) }
