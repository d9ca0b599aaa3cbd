package log

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// Logger is a [slog.Logger] that remembers the options it was built from, so
// that it can be rebuilt with some of them changed. A Logger is a value; the
// zero Logger discards everything.
type Logger struct {
	*slog.Logger
	config
}

// Make returns a Logger writing to w, configured by opts on top of
// [DefaultLevel], [DefaultFormat], [DefaultTimeLayout], [DefaultCaller] and
// [DefaultPretty].
func Make(w io.Writer, opts ...Option) Logger {
	cfg := makeConfig(w, opts...)

	return Logger{Logger: slog.New(cfg.handler()), config: cfg}
}

// Wrap returns a copy of l rebuilt with opts applied over its configuration.
// Attributes added with [Logger.With] are not carried over.
func (l Logger) Wrap(opts ...Option) Logger {
	cfg := apply(l.config, opts...)

	return Logger{Logger: slog.New(cfg.handler()), config: cfg}
}

// With returns a copy of l that adds attrs to every record.
func (l Logger) With(attrs ...slog.Attr) Logger {
	if l.Logger == nil || len(attrs) == 0 {
		return l
	}

	return Logger{
		Logger: slog.New(l.Handler().WithAttrs(attrs)),
		config: l.config,
	}
}

// Level returns the minimum level l emits.
func (l Logger) Level() Level {
	if l.Logger == nil {
		return DefaultLevel
	}

	return l.level
}

// Format returns the record encoding of l.
func (l Logger) Format() Format {
	if l.Logger == nil {
		return DefaultFormat
	}

	return l.format
}

func (l Logger) TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 3, LevelTrace, msg, attrs)
}

func (l Logger) Trace(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), 3, LevelTrace, msg, attrs)
}

func (l Logger) DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 3, LevelDebug, msg, attrs)
}

func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), 3, LevelDebug, msg, attrs)
}

func (l Logger) InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 3, LevelInfo, msg, attrs)
}

func (l Logger) Info(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), 3, LevelInfo, msg, attrs)
}

func (l Logger) WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 3, LevelWarn, msg, attrs)
}

func (l Logger) Warn(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), 3, LevelWarn, msg, attrs)
}

func (l Logger) ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, 3, LevelError, msg, attrs)
}

func (l Logger) Error(msg string, attrs ...slog.Attr) {
	l.log(DefaultContextProvider(), 3, LevelError, msg, attrs)
}

// log emits one record. skip counts the frames between runtime.Callers and
// the user's call site, so that the source attribute points at the caller
// rather than at this package.
func (l Logger) log(
	ctx context.Context,
	skip int,
	level Level,
	msg string,
	attrs []slog.Attr,
) {
	if l.Logger == nil || !l.Enabled(ctx, slog.Level(level)) {
		return
	}

	var pc uintptr

	if l.caller {
		var pcs [1]uintptr

		runtime.Callers(skip, pcs[:])
		pc = pcs[0]
	}

	r := slog.NewRecord(time.Now(), slog.Level(level), msg, pc)
	r.AddAttrs(attrs...)

	_ = l.Handler().Handle(ctx, r)
}
