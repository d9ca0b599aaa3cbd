package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/hhenriques/codefactory/log"
)

// logFormat is a custom type that configures the logger format as a side
// effect of parsing via encoding.TextUnmarshaler.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-format flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during parsing.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel is a custom type that configures the logger level as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-level flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during parsing.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"${logLevels}"  help:"Set log level (${enum})."`
	Format     logFormat `default:"text"    enum:"${logFormats}" help:"Set log format (${enum})."`
	TimeLayout string    `default:"RFC3339"                      help:"Set timestamp format, or 'none'."`
	Caller     bool      `default:"false"                        help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                         help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevels":  strings.Join(slices.Collect(log.Levels()), ","),
		"logFormats": strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan applies the logger flags found in args before kong parses them, so
// that messages logged during parsing already use the requested settings.
//
// logLevel and logFormat configure the logger from UnmarshalText while kong
// parses, but boolean flags such as --log-pretty do not, hence this pass.
func (f *logConfig) scan(args []string) {
	bools := map[string]*bool{
		"pretty": &f.Pretty,
		"caller": &f.Caller,
	}

	for i := 0; i < len(args); i++ {
		name, value, assigned := strings.Cut(args[i], "=")

		switch name {
		case "--log-level", "--log-format":
			if !assigned {
				if i+1 >= len(args) || strings.HasPrefix(args[i+1], "-") {
					continue
				}

				i++
				value = args[i]
			}

			if name == "--log-level" {
				_ = f.Level.UnmarshalText([]byte(value))
			} else {
				_ = f.Format.UnmarshalText([]byte(value))
			}

			continue
		}

		key, negated := strings.CutPrefix(name, "--no-log-")
		if !negated {
			var ok bool
			if key, ok = strings.CutPrefix(name, "--log-"); !ok {
				continue
			}
		}

		dst, ok := bools[key]
		if !ok {
			continue
		}

		v := true
		if assigned {
			b, err := strconv.ParseBool(value)
			if err != nil {
				continue
			}

			v = b
		}

		*dst = v != negated
	}

	log.Config(log.WithPretty(f.Pretty), log.WithCaller(f.Caller))
}
