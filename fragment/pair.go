package fragment

// Pair is a value-comparable two-tuple.
type Pair[A, B comparable] struct {
	First  A
	Second B
}

// MakePair returns the pair (a, b).
func MakePair[A, B comparable](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Unpack returns both elements.
func (p Pair[A, B]) Unpack() (A, B) { return p.First, p.Second }
