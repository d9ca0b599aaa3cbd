package log

import (
	"iter"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// Level is the severity of a log message.
type Level slog.Level

const (
	LevelTrace = Level(slog.LevelDebug - 4)
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// DefaultLevel is used when no level, or an unrecognized one, is given.
const DefaultLevel = LevelInfo

var levelNames = []struct {
	level Level
	name  string
}{
	{LevelTrace, "trace"},
	{LevelDebug, "debug"},
	{LevelInfo, "info"},
	{LevelWarn, "warn"},
	{LevelError, "error"},
}

// String returns the lowercase name of the level. Levels between the named
// ones are reported the way [slog.Level] reports them, e.g. "INFO+2".
func (l Level) String() string {
	for _, n := range levelNames {
		if n.level == l {
			return n.name
		}
	}

	return slog.Level(l).String()
}

// Levels yields the names of all named levels from least to most severe.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, n := range levelNames {
			if !yield(n.name) {
				return
			}
		}
	}
}

// ParseLevel returns the level named by s, ignoring case.
// Offsets understood by [slog.Level.UnmarshalText] ("warn-2") are accepted.
// Anything else yields [DefaultLevel].
func ParseLevel(s string) Level {
	s = strings.TrimSpace(s)

	for _, n := range levelNames {
		if strings.EqualFold(n.name, s) {
			return n.level
		}
	}

	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return DefaultLevel
	}

	return Level(l)
}

// Format selects the encoding of log records.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// DefaultFormat is used when no format, or an unrecognized one, is given.
const DefaultFormat = FormatText

var formatNames = []string{
	FormatText: "text",
	FormatJSON: "json",
}

func (f Format) String() string {
	if int(f) >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}

	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// Formats yields the names of all supported formats.
func Formats() iter.Seq[string] {
	return slices.Values(formatNames)
}

// ParseFormat returns the format named by s, ignoring case and surrounding
// space. Anything else yields [DefaultFormat].
func ParseFormat(s string) Format {
	i := slices.IndexFunc(formatNames, func(name string) bool {
		return strings.EqualFold(name, strings.TrimSpace(s))
	})
	if i < 0 {
		return DefaultFormat
	}

	return Format(i)
}
