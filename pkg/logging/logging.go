// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logger := logging.Setup()                    // level from LOG_LEVEL
//	logger := logging.New(os.Stdout, "debug")    // explicit writer and level
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a tint logger on stderr at the LOG_LEVEL level as the slog
// default and returns it.
func Setup() *slog.Logger {
	logger := New(os.Stderr, os.Getenv("LOG_LEVEL"))
	slog.SetDefault(logger)
	return logger
}

// New builds a tint logger writing to w. Colors are disabled unless w is a terminal.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      ParseLevel(level),
		TimeFormat: time.Kitchen,
		AddSource:  true,
		NoColor:    !isTerminal(w),
	}))
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
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

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
