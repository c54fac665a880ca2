// Package log writes levelled key/value lines to stderr.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level is a minimum severity.
type Level string

// Levels.
const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

var (
	mu     sync.Mutex
	level  = new(slog.LevelVar)
	logger = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ParseLevel converts a level name.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(s)); l {
	case LevelDebug, LevelInfo, LevelError:
		return l, nil
	}
	return "", fmt.Errorf("unknown log level %q", s)
}

// SetLevel sets the minimum level that is written. Unknown levels enable everything.
func SetLevel(l Level) {
	switch l {
	case LevelInfo:
		level.Set(slog.LevelInfo)
	case LevelError:
		level.Set(slog.LevelError)
	default:
		level.Set(slog.LevelDebug)
	}
}

// SetOutput redirects log lines to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Debug logs msg with key/value pairs at debug level.
func Debug(msg string, kv ...any) {
	current().Debug(msg, kv...)
}

// Info logs msg with key/value pairs at info level.
func Info(msg string, kv ...any) {
	current().Info(msg, kv...)
}

// Error logs msg with err prepended to the key/value pairs.
func Error(msg string, err error, kv ...any) {
	current().Error(msg, append([]any{"err", err}, kv...)...)
}
