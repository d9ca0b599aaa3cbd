package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestPackage_FunctionsUseDefaultLogger(t *testing.T) {
	var buf bytes.Buffer

	prev := SetDefault(Make(&buf, WithLevel(LevelTrace), WithFormat(FormatJSON),
		WithPretty(false)))
	defer SetDefault(prev)

	ctx := context.Background()

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
	}{
		{"Trace", Trace, "TRACE"},
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
		{"TraceContext", func(m string, a ...slog.Attr) { TraceContext(ctx, m, a...) }, "TRACE"},
		{"DebugContext", func(m string, a ...slog.Attr) { DebugContext(ctx, m, a...) }, "DEBUG"},
		{"InfoContext", func(m string, a ...slog.Attr) { InfoContext(ctx, m, a...) }, "INFO"},
		{"WarnContext", func(m string, a ...slog.Attr) { WarnContext(ctx, m, a...) }, "WARN"},
		{"ErrorContext", func(m string, a ...slog.Attr) { ErrorContext(ctx, m, a...) }, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn("message", slog.String("key", "value"))

			out := buf.String()
			if !strings.Contains(out, `"level":"`+tt.level+`"`) {
				t.Errorf("expected level %s, got %s", tt.level, out)
			}
			if !strings.Contains(out, `"key":"value"`) {
				t.Errorf("expected attribute, got %s", out)
			}
		})
	}
}

func TestConfig_RebuildsDefault(t *testing.T) {
	var buf bytes.Buffer

	prev := SetDefault(Make(&buf, WithPretty(false)))
	defer SetDefault(prev)

	Config(WithLevel(LevelError))
	Warn("filtered")

	if buf.Len() != 0 {
		t.Errorf("expected nothing below error, got %q", buf.String())
	}

	With(slog.String("c", "1")).Error("kept")

	if !strings.Contains(buf.String(), "c=1") {
		t.Errorf("expected attribute from With, got %q", buf.String())
	}
}
