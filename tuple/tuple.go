// Package tuple provides a generic pair.
package tuple

// NewTuple2 pairs first and second.
func NewTuple2[A, B any](first A, second B) Tuple2[A, B] {
	return Tuple2[A, B]{
		first:  first,
		second: second,
	}
}

// Tuple2 is an immutable pair of values.
type Tuple2[A any, B any] struct {
	first  A
	second B
}

func (t Tuple2[A, B]) First() A { //nolint:ireturn
	return t.first
}

func (t Tuple2[A, B]) Second() B { //nolint:ireturn
	return t.second
}
