// ABOUTME: Leveled logging wrapper around slog with a tint handler
// ABOUTME: Global level via SetLevel; output defaults to io.Discard since stderr is the live terminal

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level  atomic.Int64
	logger atomic.Pointer[slog.Logger]
)

// globalLevel lets the handler follow SetLevel without being rebuilt.
type globalLevel struct{}

func (globalLevel) Level() slog.Level { return slog.Level(level.Load()) }

func init() {
	level.Store(int64(LevelInfo))
	SetOutput(io.Discard)
}

// SetOutput redirects log records to w. Colors are disabled because the
// destination is a file, never the raw-mode terminal.
func SetOutput(w io.Writer) {
	h := tint.NewHandler(w, &tint.Options{
		Level:      globalLevel{},
		TimeFormat: time.DateTime,
		NoColor:    true,
	})
	logger.Store(slog.New(h))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// ParseLevel maps debug, info, warn or error (case-insensitive) to a level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger returns the underlying structured logger.
func Logger() *slog.Logger {
	return logger.Load()
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	logf(LevelDebug, format, args...)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	logf(LevelInfo, format, args...)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	logf(LevelWarn, format, args...)
}

// Error logs an error message.
func Error(format string, args ...any) {
	logf(LevelError, format, args...)
}

func logf(l slog.Level, format string, args ...any) {
	if slog.Level(level.Load()) > l {
		return
	}
	logger.Load().Log(context.Background(), l, fmt.Sprintf(format, args...))
}
