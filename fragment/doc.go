// Package fragment models generated source code as an immutable tree of
// nodes and prints it.
//
// An [Expression] produces a value; a [Statement] is a line (or a sequence
// of lines) of code. Both wrap a [Node] tree built from a small closed set
// of node kinds. Absent pieces are represented by [Nop], never by nil, and
// are skipped wherever they appear: chains, argument lists, statement
// sequences and blocks. Code built this way stays well-formed whichever
// optional pieces are missing.
//
// Nothing is written until a fragment is rendered:
//
//	cond := fragment.ChainOf(" == ", true, fragment.Raw("x"), fragment.Raw("null"))
//	stmt := fragment.Compound(fragment.Cat(fragment.Raw("if "), cond),
//		fragment.Raw("return").ToStatement())
//	err := fragment.Render(os.Stdout, stmt, fragment.WithIndent(4))
package fragment
