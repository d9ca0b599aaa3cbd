package log

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// DefaultTimeLayout is the timestamp layout of a new logger.
const DefaultTimeLayout = time.RFC3339

const (
	DefaultCaller = false
	DefaultPretty = true
)

type config struct {
	output io.Writer
	stamp  stampFunc
	level  Level
	format Format
	caller bool
	pretty bool
}

func makeConfig(w io.Writer, opts ...Option) config {
	return apply(config{
		stamp:  makeStamp(DefaultTimeLayout),
		level:  DefaultLevel,
		format: DefaultFormat,
		caller: DefaultCaller,
		pretty: DefaultPretty,
	}, append([]Option{WithOutput(w)}, opts...)...)
}

func (c config) handlerOptions() *slog.HandlerOptions {
	stamp := c.stamp
	if stamp == nil {
		stamp = makeStamp(DefaultTimeLayout)
	}

	return &slog.HandlerOptions{
		AddSource: c.caller,
		Level:     slog.Level(c.level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}

			switch a.Key {
			case slog.TimeKey:
				t, ok := a.Value.Any().(time.Time)
				if !ok {
					return a
				}

				s := stamp(t)
				if s == "" {
					return slog.Attr{}
				}

				return slog.String(a.Key, s)

			case slog.LevelKey:
				if l, ok := a.Value.Any().(slog.Level); ok {
					return slog.String(a.Key, strings.ToUpper(Level(l).String()))
				}
			}

			return a
		},
	}
}

func (c config) handler() slog.Handler {
	out := c.output
	if out == nil {
		out = io.Discard
	}

	opts := c.handlerOptions()

	if c.pretty {
		return newPrettyHandler(out, c.format, opts)
	}

	switch c.format {
	case FormatJSON:
		return slog.NewJSONHandler(out, opts)
	case FormatText:
		return slog.NewTextHandler(out, opts)
	default:
		return slog.DiscardHandler
	}
}
