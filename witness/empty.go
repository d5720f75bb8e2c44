package witness

import (
	"github.com/amp-labs/amp-witness/empty"
	"github.com/amp-labs/amp-witness/optional"
	"github.com/amp-labs/amp-witness/tuple"
	"github.com/amp-labs/amp-witness/zero"
)

// EmptyInitializing produces a starting value of T, typically the
// identity element of some Combining.
type EmptyInitializing[T any] struct {
	Create func() T
}

// NewEmptyInitializing wraps create.
func NewEmptyInitializing[T any](create func() T) EmptyInitializing[T] {
	return EmptyInitializing[T]{Create: create}
}

// Zero creates the zero value of T.
func Zero[T any]() EmptyInitializing[T] {
	return NewEmptyInitializing(zero.Value[T])
}

// Constant creates v every time. Reference types such as slices and maps
// come back sharing the same backing storage on each call.
func Constant[T any](v T) EmptyInitializing[T] {
	return NewEmptyInitializing(func() T {
		return v
	})
}

// EmptySlice creates a fresh, non-nil, empty slice.
func EmptySlice[T any]() EmptyInitializing[[]T] {
	return NewEmptyInitializing(empty.Slice[T])
}

// EmptyMap creates a fresh, non-nil, empty map.
func EmptyMap[K comparable, V any]() EmptyInitializing[map[K]V] {
	return NewEmptyInitializing(empty.Map[K, V])
}

// None creates an empty optional.Value.
func None[T any]() EmptyInitializing[optional.Value[T]] {
	return NewEmptyInitializing(optional.None[T])
}

// PairEmpty creates tuples from ea and eb.
func PairEmpty[A, B any](ea EmptyInitializing[A], eb EmptyInitializing[B]) EmptyInitializing[tuple.Tuple2[A, B]] {
	return NewEmptyInitializing(func() tuple.Tuple2[A, B] {
		return tuple.NewTuple2(ea.Create(), eb.Create())
	})
}
