package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// palette holds the styles of the pretty handler. Styles come from a
// renderer bound to the output, so they degrade to plain text when the output
// is not a terminal.
type palette struct {
	key, str, num, yes, no, dur, when, null lipgloss.Style
	trace, debug, info, warn, err          lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return palette{
		key:   fg("8"),
		str:   fg("6"),
		num:   fg("3"),
		yes:   fg("2"),
		no:    fg("1"),
		dur:   fg("5"),
		when:  fg("4"),
		null:  fg("8"),
		trace: fg("8").Bold(true),
		debug: fg("4").Bold(true),
		info:  fg("2").Bold(true),
		warn:  fg("3").Bold(true),
		err:   fg("1").Bold(true),
	}
}

func (p palette) level(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return p.err
	case l >= slog.LevelWarn:
		return p.warn
	case l >= slog.LevelInfo:
		return p.info
	case l >= slog.LevelDebug:
		return p.debug
	default:
		return p.trace
	}
}

func (p palette) value(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return p.str.Render(v.String())
	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return p.num.Render(v.String())
	case slog.KindBool:
		if v.Bool() {
			return p.yes.Render("true")
		}

		return p.no.Render("false")
	case slog.KindDuration:
		return p.dur.Render(v.Duration().String())
	case slog.KindTime:
		return p.when.Render(v.Time().Format(time.RFC3339))
	}

	switch a := v.Any().(type) {
	case nil:
		return p.null.Render("null")
	case error:
		return p.no.Render(a.Error())
	case slog.Level:
		return p.level(a).Render(Level(a).String())
	default:
		return p.str.Render(fmt.Sprint(a))
	}
}

// field is one rendered key/value pair.
type field struct {
	key, val string
}

// prettyHandler renders records either as one colorized "key=value" line
// (FormatText) or as an indented multi-line object (FormatJSON).
type prettyHandler struct {
	opts   slog.HandlerOptions
	layout Format
	pal    palette
	mu     *sync.Mutex
	w      io.Writer
	prefix string
	groups []string
	fields []field
}

func newPrettyHandler(
	w io.Writer,
	layout Format,
	opts *slog.HandlerOptions,
) *prettyHandler {
	return &prettyHandler{
		opts:   *opts,
		layout: layout,
		pal:    newPalette(w),
		mu:     &sync.Mutex{},
		w:      w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	threshold := slog.LevelInfo
	if h.opts.Level != nil {
		threshold = h.opts.Level.Level()
	}

	return level >= threshold
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.fields = append(h.fields[:len(h.fields):len(h.fields)],
		h.flatten(nil, h.prefix, h.groups, attrs)...)

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."
	c.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &c
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]field, 0, 4+len(h.fields)+r.NumAttrs())

	builtin := []slog.Attr{}
	if !r.Time.IsZero() {
		builtin = append(builtin, slog.Time(slog.TimeKey, r.Time))
	}

	builtin = append(builtin, slog.Any(slog.LevelKey, r.Level))

	if h.opts.AddSource && r.PC != 0 {
		if src := r.Source(); src != nil {
			builtin = append(builtin,
				slog.String(slog.SourceKey, src.File+":"+strconv.Itoa(src.Line)))
		}
	}

	builtin = append(builtin, slog.String(slog.MessageKey, r.Message))

	for _, a := range builtin {
		if a.Key == slog.LevelKey {
			a = h.replace(nil, a)
			if a.Equal(slog.Attr{}) {
				continue
			}

			fields = append(fields, field{
				key: h.pal.key.Render(a.Key),
				val: h.pal.level(r.Level).Render(a.Value.String()),
			})

			continue
		}

		fields = h.flatten(fields, "", nil, []slog.Attr{a})
	}

	fields = append(fields, h.fields...)

	var attrs []slog.Attr

	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)

		return true
	})

	fields = h.flatten(fields, h.prefix, h.groups, attrs)

	var buf bytes.Buffer

	switch h.layout {
	case FormatJSON:
		buf.WriteString("{\n")

		for i, f := range fields {
			if i > 0 {
				buf.WriteString(",\n")
			}

			buf.WriteString("  ")
			buf.WriteString(f.key)
			buf.WriteString(": ")
			buf.WriteString(f.val)
		}

		buf.WriteString("\n}\n")

	default:
		for i, f := range fields {
			if i > 0 {
				buf.WriteByte(' ')
			}

			buf.WriteString(f.key)
			buf.WriteByte('=')
			buf.WriteString(f.val)
		}

		buf.WriteByte('\n')
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) replace(groups []string, a slog.Attr) slog.Attr {
	if h.opts.ReplaceAttr == nil || a.Value.Kind() == slog.KindGroup {
		return a
	}

	return h.opts.ReplaceAttr(groups, a)
}

// flatten renders attrs into dst, expanding groups (including resolved
// [slog.LogValuer] groups) into dotted keys.
func (h *prettyHandler) flatten(
	dst []field,
	prefix string,
	groups []string,
	attrs []slog.Attr,
) []field {
	for _, a := range attrs {
		a.Value = a.Value.Resolve()
		a = h.replace(groups, a)

		if a.Equal(slog.Attr{}) {
			continue
		}

		if a.Value.Kind() == slog.KindGroup {
			sub := a.Value.Group()
			if a.Key == "" {
				dst = h.flatten(dst, prefix, groups, sub)
			} else {
				dst = h.flatten(dst, prefix+a.Key+".",
					append(groups[:len(groups):len(groups)], a.Key), sub)
			}

			continue
		}

		dst = append(dst, field{
			key: h.pal.key.Render(prefix + a.Key),
			val: h.pal.value(a.Value),
		})
	}

	return dst
}
