package fragment

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Option configures rendering.
type Option func(*printer)

// WithIndent indents nested blocks by n spaces per level. With n <= 0
// (the default) nested lines start at column zero.
func WithIndent(n int) Option {
	return func(p *printer) {
		p.unit = strings.Repeat(" ", max(n, 0))
	}
}

// WithTabs indents nested blocks by one tab per level.
func WithTabs() Option {
	return func(p *printer) { p.unit = "\t" }
}

// Render writes the source text of f to w.
//
// Rendering stops at the first write error or malformed node, and that
// error is returned. Output written before the failure is not retracted.
func Render(w io.Writer, f Fragment, opts ...Option) error {
	_, err := render(w, f.Node(), opts)

	return err
}

// RenderString returns the source text of f.
func RenderString(f Fragment, opts ...Option) (string, error) {
	var sb strings.Builder

	_, err := render(&sb, f.Node(), opts)

	return sb.String(), err
}

func render(w io.Writer, n Node, opts []Option) (int64, error) {
	p := printer{w: w, bol: true}

	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}

	p.node(n)

	return p.n, p.err
}

// printer walks a node tree. The first error is sticky: once set, nothing
// more is written.
type printer struct {
	w     io.Writer
	unit  string
	depth int
	bol   bool
	n     int64
	err   error
}

func (p *printer) node(n Node) {
	if p.err != nil {
		return
	}

	switch n := n.(type) {
	case nil, Nop:

	case Text:
		p.text(string(n))

	case Group:
		for _, c := range n {
			p.node(c)
		}

	case Chain:
		terms := present(n.Terms)
		if len(terms) == 0 {
			p.fail(ErrEmptyOperands.With(slog.String("separator", n.Sep)))

			return
		}

		if n.Paren {
			p.text("(")
		}

		p.join(n.Sep, terms)

		if n.Paren {
			p.text(")")
		}

	case Call:
		p.node(n.Callee)
		p.text("(")
		p.join(", ", present(n.Args))
		p.text(")")

	case List:
		p.text(n.Open)
		p.join(n.Sep, present(n.Items))
		p.text(n.Close)

	case Line:
		if isNop(n.Body) {
			return
		}

		p.node(n.Body)

		if n.Terminate {
			p.text(";")
		}

		p.text("\n")

	case Nest:
		p.depth++
		for _, c := range n {
			p.node(c)
		}
		p.depth--

	default:
		p.fail(ErrUnknownNode.With(slog.String("type", fmt.Sprintf("%T", n))))
	}
}

func (p *printer) join(sep string, ns []Node) {
	for i, n := range ns {
		if i > 0 {
			p.text(sep)
		}

		p.node(n)
	}
}

// text writes s, indenting every line that starts while nested.
// Empty lines are left unindented.
func (p *printer) text(s string) {
	for s != "" && p.err == nil {
		if p.bol && s[0] != '\n' && p.depth > 0 && p.unit != "" {
			p.write(strings.Repeat(p.unit, p.depth))
		}

		i := strings.IndexByte(s, '\n')
		if i < 0 {
			p.write(s)
			p.bol = false

			return
		}

		p.write(s[:i+1])
		p.bol = true
		s = s[i+1:]
	}
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}

	n, err := io.WriteString(p.w, s)
	p.n += int64(n)

	if err != nil {
		p.err = err
	}
}

func (p *printer) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}
