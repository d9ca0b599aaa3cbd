package log

import (
	"io"
	"slices"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", LevelDebug},
		{" info ", LevelInfo},
		{"Warn", LevelWarn},
		{"error", LevelError},
		{"warn-2", LevelWarn - 2},
		{"loud", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	if got := LevelTrace.String(); got != "trace" {
		t.Errorf("expected trace, got %q", got)
	}
	if got := (LevelInfo + 2).String(); got != "INFO+2" {
		t.Errorf("expected INFO+2, got %q", got)
	}

	names := slices.Collect(Levels())
	if !slices.Equal(names, []string{"trace", "debug", "info", "warn", "error"}) {
		t.Errorf("unexpected level names %v", names)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{"JSON ", FormatJSON},
		{"text", FormatText},
		{"yaml", DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseFormat(tt.in); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if got := Format(9).String(); got != "Format(9)" {
		t.Errorf("unexpected name for unknown format: %q", got)
	}
	if got := slices.Collect(Formats()); !slices.Equal(got, []string{"text", "json"}) {
		t.Errorf("unexpected format names %v", got)
	}
}

func TestOptions_SetFields(t *testing.T) {
	c := apply(config{},
		WithLevel(LevelWarn),
		WithFormat(FormatJSON),
		WithCaller(true),
		WithPretty(false),
		nil,
	)

	if c.level != LevelWarn || c.format != FormatJSON || !c.caller || c.pretty {
		t.Errorf("options not applied: %+v", c)
	}
}

func TestWithOutput_Nil(t *testing.T) {
	c := WithOutput(nil)(config{})
	if c.output != io.Discard {
		t.Error("expected nil output to become io.Discard")
	}
}

func TestWithTimeLayout(t *testing.T) {
	now := time.Date(2023, 10, 15, 14, 30, 45, 123456789, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"rfc3339", "RFC3339", "2023-10-15T14:30:45Z"},
		{"rfc3339 nano", "rfc3339-nano", "2023-10-15T14:30:45.123456789Z"},
		{"kitchen", "Kitchen", "2:30PM"},
		{"milliseconds", "ms", "Oct 15 14:30:45.123"},
		{"custom", "2006/01/02", "2023/10/15"},
		{"none", "none", ""},
		{"blank", "  \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := WithTimeLayout(tt.layout)(config{})
			if got := c.stamp(now); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestConfig_HandlerOptions_UppercasesLevel(t *testing.T) {
	var sb strings.Builder

	logger := Make(&sb, WithPretty(false), WithTimeLayout("none"),
		WithLevel(LevelTrace))
	logger.Trace("t")

	if got := sb.String(); got != "level=TRACE msg=t\n" {
		t.Errorf("unexpected record %q", got)
	}
}

func BenchmarkStamp(b *testing.B) {
	stamp := makeStamp("RFC3339Nano")
	now := time.Now()

	for b.Loop() {
		_ = stamp(now)
	}
}
