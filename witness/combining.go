package witness

import (
	"cmp"

	"github.com/amp-labs/amp-witness/optional"
	"github.com/amp-labs/amp-witness/tuple"
)

// Combining merges two values of T into one.
type Combining[T any] struct {
	Combine func(T, T) T
}

// NewCombining wraps combine.
func NewCombining[T any](combine func(T, T) T) Combining[T] {
	return Combining[T]{Combine: combine}
}

// Number is the set of types Sum and Product work over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum combines by addition.
func Sum[N Number]() Combining[N] {
	return NewCombining(func(a, b N) N {
		return a + b
	})
}

// Product combines by multiplication.
func Product[N Number]() Combining[N] {
	return NewCombining(func(a, b N) N {
		return a * b
	})
}

// Concat combines strings by concatenation.
func Concat() Combining[string] {
	return NewCombining(func(a, b string) string {
		return a + b
	})
}

// Append combines slices by appending b to a. The result never shares a
// backing array with either input.
func Append[T any]() Combining[[]T] {
	return NewCombining(func(a, b []T) []T {
		out := make([]T, 0, len(a)+len(b))
		out = append(out, a...)

		return append(out, b...)
	})
}

// FirstPresent keeps a when it holds a value and falls back to b.
func FirstPresent[T any]() Combining[optional.Value[T]] {
	return NewCombining(func(a, b optional.Value[T]) optional.Value[T] {
		return a.OrElse(b)
	})
}

// First always keeps the left value.
func First[T any]() Combining[T] {
	return NewCombining(func(a, _ T) T {
		return a
	})
}

// Last always keeps the right value.
func Last[T any]() Combining[T] {
	return NewCombining(func(_, b T) T {
		return b
	})
}

// Min keeps the smaller value, preferring a on ties.
func Min[T cmp.Ordered]() Combining[T] {
	return NewCombining(func(a, b T) T {
		if cmp.Less(b, a) {
			return b
		}

		return a
	})
}

// Max keeps the larger value, preferring a on ties.
func Max[T cmp.Ordered]() Combining[T] {
	return NewCombining(func(a, b T) T {
		if cmp.Less(a, b) {
			return b
		}

		return a
	})
}

// Pair combines tuples component-wise with ca and cb.
func Pair[A, B any](ca Combining[A], cb Combining[B]) Combining[tuple.Tuple2[A, B]] {
	return NewCombining(func(x, y tuple.Tuple2[A, B]) tuple.Tuple2[A, B] {
		return tuple.NewTuple2(
			ca.Combine(x.First(), y.First()),
			cb.Combine(x.Second(), y.Second()),
		)
	})
}

// Dual flips the argument order of c.
func Dual[T any](c Combining[T]) Combining[T] {
	return NewCombining(func(a, b T) T {
		return c.Combine(b, a)
	})
}
