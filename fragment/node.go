package fragment

// Node is one element of a fragment tree. The set of node kinds is closed:
// only the types declared in this file implement it, and [Render] knows how
// to print each of them.
type Node interface {
	node()
}

// Nop is the absence of code. It renders nothing and is dropped from chains,
// argument lists and statement sequences. A nil Node means the same.
type Nop struct{}

// Text is literal source text. Line breaks inside it are honored by the
// printer, which indents the line that follows.
type Text string

// Group renders its children one after another.
type Group []Node

// Chain joins its non-empty terms with Sep, optionally in parentheses.
// A chain with no non-empty term cannot be rendered.
type Chain struct {
	Sep   string
	Paren bool
	Terms []Node
}

// Call renders Callee followed by the non-empty Args in parentheses.
type Call struct {
	Callee Node
	Args   []Node
}

// List renders its non-empty Items separated by Sep between Open and Close.
type List struct {
	Open  string
	Sep   string
	Close string
	Items []Node
}

// Line is a statement line: Body, a ';' if Terminate is set, and a line
// break. A Line with an empty body renders nothing.
type Line struct {
	Body      Node
	Terminate bool
}

// Nest renders its children one indentation level deeper.
type Nest []Node

func (Nop) node()   {}
func (Text) node()  {}
func (Group) node() {}
func (Chain) node() {}
func (Call) node()  {}
func (List) node()  {}
func (Line) node()  {}
func (Nest) node()  {}

// isNop reports whether n renders nothing.
func isNop(n Node) bool {
	switch n := n.(type) {
	case nil, Nop:
		return true
	case Text:
		return n == ""
	case Group:
		return allNop(n)
	case Nest:
		return allNop(n)
	case Line:
		return isNop(n.Body)
	default:
		return false
	}
}

func allNop(ns []Node) bool {
	for _, n := range ns {
		if !isNop(n) {
			return false
		}
	}

	return true
}

// present returns the nodes of ns that render something.
func present(ns []Node) []Node {
	out := make([]Node, 0, len(ns))

	for _, n := range ns {
		if !isNop(n) {
			out = append(out, n)
		}
	}

	return out
}
