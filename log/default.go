package log

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// DefaultContextProvider supplies the context of the logging calls that do
// not take one.
var DefaultContextProvider = context.TODO

var (
	defaultMu  sync.RWMutex
	defaultLog = Make(os.Stderr)
)

// Default returns the package logger. It writes to standard error so that
// generated code on standard output is never interleaved with log records.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultLog
}

// SetDefault replaces the package logger and returns the previous one.
func SetDefault(l Logger) Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	prev := defaultLog
	defaultLog = l

	return prev
}

// Config rebuilds the package logger with opts applied.
func Config(opts ...Option) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultLog = defaultLog.Wrap(opts...)
}

// With returns the package logger extended with attrs.
func With(attrs ...slog.Attr) Logger {
	return Default().With(attrs...)
}

func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, 3, LevelTrace, msg, attrs)
}

func Trace(msg string, attrs ...slog.Attr) {
	Default().log(DefaultContextProvider(), 3, LevelTrace, msg, attrs)
}

func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, 3, LevelDebug, msg, attrs)
}

func Debug(msg string, attrs ...slog.Attr) {
	Default().log(DefaultContextProvider(), 3, LevelDebug, msg, attrs)
}

func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, 3, LevelInfo, msg, attrs)
}

func Info(msg string, attrs ...slog.Attr) {
	Default().log(DefaultContextProvider(), 3, LevelInfo, msg, attrs)
}

func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, 3, LevelWarn, msg, attrs)
}

func Warn(msg string, attrs ...slog.Attr) {
	Default().log(DefaultContextProvider(), 3, LevelWarn, msg, attrs)
}

func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().log(ctx, 3, LevelError, msg, attrs)
}

func Error(msg string, attrs ...slog.Attr) {
	Default().log(DefaultContextProvider(), 3, LevelError, msg, attrs)
}
