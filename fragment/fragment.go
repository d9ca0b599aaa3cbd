package fragment

import (
	"io"

	"github.com/zeebo/xxh3"
)

// Fragment is a piece of source code that can be rendered.
type Fragment interface {
	// Node returns the tree rendered for the fragment.
	Node() Node
	// IsNop reports whether the fragment renders nothing.
	IsNop() bool

	io.WriterTo
	String() string
}

// Expression is a value-producing fragment. It never carries a statement
// terminator. The zero Expression is the no-op.
type Expression struct {
	node Node
}

// Expr returns an expression rendering n.
func Expr(n Node) Expression { return Expression{node: n} }

// Raw returns an expression rendering s verbatim. An empty s is the no-op.
func Raw(s string) Expression {
	if s == "" {
		return Expression{}
	}

	return Expression{node: Text(s)}
}

func (e Expression) Node() Node {
	if e.node == nil {
		return Nop{}
	}

	return e.node
}

func (e Expression) IsNop() bool { return isNop(e.node) }

func (e Expression) WriteTo(w io.Writer) (int64, error) {
	return render(w, e.Node(), nil)
}

func (e Expression) String() string {
	s, _ := RenderString(e)

	return s
}

// Equal reports whether e and other render the same text.
func (e Expression) Equal(other Expression) bool {
	return e.String() == other.String()
}

// Hash returns the xxh3 hash of the rendered text, so that expressions that
// are [Expression.Equal] hash alike.
func (e Expression) Hash() uint64 {
	return xxh3.HashString(e.String())
}

// ToStatement returns e as a statement terminated with ';'.
func (e Expression) ToStatement() Statement {
	return Stmt(e.node, true)
}

// ToCompound returns e as an unterminated statement, for self-delimited
// constructs such as blocks.
func (e Expression) ToCompound() Statement {
	return Stmt(e.node, false)
}

// Statement is an effectful fragment. Unless it is a no-op, a rendered
// statement always ends with a line break, preceded by ';' when it is
// terminated. The zero Statement is the no-op.
type Statement struct {
	node Node
}

// Stmt returns a statement line rendering body.
func Stmt(body Node, terminate bool) Statement {
	if isNop(body) {
		return Statement{}
	}

	return Statement{node: Line{Body: body, Terminate: terminate}}
}

func (s Statement) Node() Node {
	if s.node == nil {
		return Nop{}
	}

	return s.node
}

func (s Statement) IsNop() bool { return isNop(s.node) }

func (s Statement) WriteTo(w io.Writer) (int64, error) {
	return render(w, s.Node(), nil)
}

func (s Statement) String() string {
	str, _ := RenderString(s)

	return str
}

// Terminated reports whether s ends with ';'.
func (s Statement) Terminated() bool {
	l, ok := s.node.(Line)

	return ok && l.Terminate
}

// ToExpression returns the body of s without terminator or line break.
// A sequence keeps its lines.
func (s Statement) ToExpression() Expression {
	if l, ok := s.node.(Line); ok {
		return Expression{node: l.Body}
	}

	return Expression{node: s.node}
}
