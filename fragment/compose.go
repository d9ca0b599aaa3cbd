package fragment

import (
	"log/slog"
	"strconv"
)

// Filter returns the fragments of fs that render something, in order.
func Filter[F Fragment](fs []F) []F {
	out := make([]F, 0, len(fs))

	for _, f := range fs {
		if !f.IsNop() {
			out = append(out, f)
		}
	}

	return out
}

// Nodes returns the nodes of fs.
func Nodes[F Fragment](fs []F) []Node {
	ns := make([]Node, len(fs))
	for i, f := range fs {
		ns[i] = f.Node()
	}

	return ns
}

// ChainOf joins the non-empty terms with sep, in parentheses when paren is
// set. It panics with [ErrEmptyOperands] when every term is empty.
func ChainOf(sep string, paren bool, terms ...Expression) Expression {
	terms = Filter(terms)
	if len(terms) == 0 {
		panic(ErrEmptyOperands.With(
			slog.String("separator", sep),
			slog.Bool("paren", paren),
		))
	}

	return Expression{node: Chain{Sep: sep, Paren: paren, Terms: Nodes(terms)}}
}

// Join is like [ChainOf] without parentheses, except that it returns the
// no-op instead of panicking when every part is empty.
func Join(sep string, parts ...Expression) Expression {
	parts = Filter(parts)
	if len(parts) == 0 {
		return Expression{}
	}

	return Expression{node: Chain{Sep: sep, Terms: Nodes(parts)}}
}

// CallOf returns callee applied to the non-empty args.
func CallOf(callee Expression, args ...Expression) Expression {
	return Expression{node: Call{Callee: callee.Node(), Args: Nodes(args)}}
}

// ListOf returns the non-empty items separated by sep between open and
// close. Unlike [ChainOf], an empty list is allowed.
func ListOf(open, sep, close string, items ...Expression) Expression {
	return Expression{node: List{Open: open, Sep: sep, Close: close, Items: Nodes(items)}}
}

// Ident returns a dotted identifier path. Empty parts are skipped; with no
// parts left it is the no-op.
func Ident(parts ...string) Expression {
	es := make([]Expression, len(parts))
	for i, p := range parts {
		es[i] = Raw(p)
	}

	return IdentOf(es...)
}

// IdentOf is [Ident] over expressions.
func IdentOf(parts ...Expression) Expression {
	return Join(".", parts...)
}

// Cat renders parts back to back.
func Cat(parts ...Expression) Expression {
	return Expression{node: Group(Nodes(parts))}
}

// Int returns the decimal text of n.
func Int[T ~int | ~int8 | ~int16 | ~int32 | ~int64](n T) Expression {
	return Expression{node: Text(strconv.FormatInt(int64(n), 10))}
}

// Seq returns the non-empty statements as one unterminated statement. Each
// statement keeps its own terminator and line break; the sequence adds
// neither.
func Seq(stmts ...Statement) Statement {
	stmts = Filter(stmts)
	if len(stmts) == 0 {
		return Statement{}
	}

	if len(stmts) == 1 {
		return stmts[0]
	}

	return Statement{node: Group(Nodes(stmts))}
}

// Braces returns a brace-delimited block of the non-empty statements, one
// indentation level deeper: "{", a line break, the body, then "}".
func Braces(body ...Statement) Node {
	return Group{Text("{\n"), Nest(Nodes(Filter(body))), Text("}")}
}

// Compound returns the unterminated statement "head {body}".
func Compound(head Expression, body ...Statement) Statement {
	return Stmt(Group{head.Node(), Text(" "), Braces(body...)}, false)
}

// Blank returns a statement rendering an empty line.
func Blank() Statement {
	return Statement{node: Text("\n")}
}
