package witness

import (
	"github.com/amp-labs/amp-witness/optional"
	"github.com/amp-labs/amp-witness/tuple"
)

// Monoid pairs a Combining with the EmptyInitializing that acts as its
// identity. Nothing checks the identity or associativity laws; they are a
// promise made by whoever builds the value.
type Monoid[T any] struct {
	Empty     EmptyInitializing[T]
	Combining Combining[T]
}

// NewMonoid pairs e and c.
func NewMonoid[T any](e EmptyInitializing[T], c Combining[T]) Monoid[T] {
	return Monoid[T]{Empty: e, Combining: c}
}

// SumMonoid is addition starting from 0.
func SumMonoid[N Number]() Monoid[N] {
	return NewMonoid(Zero[N](), Sum[N]())
}

// ProductMonoid is multiplication starting from 1.
func ProductMonoid[N Number]() Monoid[N] {
	return NewMonoid(Constant(N(1)), Product[N]())
}

// ConcatMonoid is string concatenation starting from "".
func ConcatMonoid() Monoid[string] {
	return NewMonoid(Zero[string](), Concat())
}

// AppendMonoid is slice appending starting from an empty slice.
func AppendMonoid[T any]() Monoid[[]T] {
	return NewMonoid(EmptySlice[T](), Append[T]())
}

// FirstPresentMonoid keeps the first present value, starting from None.
func FirstPresentMonoid[T any]() Monoid[optional.Value[T]] {
	return NewMonoid(None[T](), FirstPresent[T]())
}

// PairMonoid runs ma and mb side by side over tuples.
func PairMonoid[A, B any](ma Monoid[A], mb Monoid[B]) Monoid[tuple.Tuple2[A, B]] {
	return NewMonoid(PairEmpty(ma.Empty, mb.Empty), Pair(ma.Combining, mb.Combining))
}
