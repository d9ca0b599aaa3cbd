package log

import (
	"io"
	"strings"
	"time"
)

// Option modifies a logger configuration.
type Option func(config) config

func apply(c config, opts ...Option) config {
	for _, opt := range opts {
		if opt != nil {
			c = opt(c)
		}
	}

	return c
}

// WithOutput sends log records to w. A nil writer discards them.
func WithOutput(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		c.output = w

		return c
	}
}

// WithLevel discards records below level.
func WithLevel(level Level) Option {
	return func(c config) config {
		c.level = level

		return c
	}
}

// WithFormat selects the record encoding.
func WithFormat(format Format) Option {
	return func(c config) config {
		c.format = format

		return c
	}
}

// WithTimeLayout sets the timestamp layout.
//
// Named layouts of the [time] package ("RFC3339", "Kitchen", ...) and the
// shorthands "ms", "us" and "ns" are matched case-insensitively, ignoring
// punctuation. Any other non-blank layout is handed to [time.Time.Format]
// verbatim. A blank layout, or "none", omits timestamps.
func WithTimeLayout(layout string) Option {
	stamp := makeStamp(layout)

	return func(c config) config {
		c.stamp = stamp

		return c
	}
}

// WithCaller includes the source location of each log call.
func WithCaller(enable bool) Option {
	return func(c config) config {
		c.caller = enable

		return c
	}
}

// WithPretty colorizes records. JSON records are also spread over several
// lines. Colors are only emitted when the output is a terminal.
func WithPretty(enable bool) Option {
	return func(c config) config {
		c.pretty = enable

		return c
	}
}

var namedLayouts = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"datetime":    time.DateTime,
	"dateonly":    time.DateOnly,
	"timeonly":    time.TimeOnly,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"kitchen":     time.Kitchen,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"stampmicro":  time.StampMicro,
	"stampnano":   time.StampNano,
	"ms":          time.StampMilli,
	"us":          time.StampMicro,
	"ns":          time.StampNano,
	"none":        "",
}

// stampFunc renders a record time; an empty result drops the time attribute.
type stampFunc func(time.Time) string

func makeStamp(layout string) stampFunc {
	key := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return -1
		}
	}, strings.ToLower(layout))

	if named, ok := namedLayouts[key]; ok {
		layout = named
	}

	if strings.TrimSpace(layout) == "" {
		return func(time.Time) string { return "" }
	}

	return func(t time.Time) string { return t.Format(layout) }
}
