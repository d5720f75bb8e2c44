package witness

import (
	"iter"

	"github.com/amp-labs/amp-witness/zero"
)

// Reduce folds xs left to right, starting from empty.Create() and merging
// each element in with combining. An empty xs returns empty.Create()
// untouched.
func Reduce[T any](xs []T, empty EmptyInitializing[T], combining Combining[T]) T {
	return ReduceFrom(xs, empty.Create(), combining)
}

// ReduceFrom folds xs left to right starting from initial.
func ReduceFrom[T any](xs []T, initial T, combining Combining[T]) T {
	acc := initial

	for _, x := range xs {
		acc = combining.Combine(acc, x)
	}

	return acc
}

// ReduceSeq is Reduce over an iterator.
func ReduceSeq[T any](seq iter.Seq[T], empty EmptyInitializing[T], combining Combining[T]) T {
	acc := empty.Create()

	for x := range seq {
		acc = combining.Combine(acc, x)
	}

	return acc
}

// Fold is Reduce with both witnesses taken from m.
func Fold[T any](xs []T, m Monoid[T]) T {
	return Reduce(xs, m.Empty, m.Combining)
}

// FoldMap converts each element with f and folds the results in one pass.
func FoldMap[A, B any](xs []A, empty EmptyInitializing[B], combining Combining[B], f func(A) B) B {
	acc := empty.Create()

	for _, x := range xs {
		acc = combining.Combine(acc, f(x))
	}

	return acc
}

// TryCombining merges two values of T and may fail.
type TryCombining[T any] struct {
	Combine func(T, T) (T, error)
}

// NewTryCombining wraps combine.
func NewTryCombining[T any](combine func(T, T) (T, error)) TryCombining[T] {
	return TryCombining[T]{Combine: combine}
}

// Lift turns a Combining into a TryCombining that never fails.
func Lift[T any](c Combining[T]) TryCombining[T] {
	return NewTryCombining(func(a, b T) (T, error) {
		return c.Combine(a, b), nil
	})
}

// TryReduce is Reduce with a fallible combiner. It stops at the first
// error and returns that error value as-is, along with the zero T.
func TryReduce[T any](xs []T, empty EmptyInitializing[T], combining TryCombining[T]) (T, error) {
	acc := empty.Create()

	for _, x := range xs {
		next, err := combining.Combine(acc, x)
		if err != nil {
			return zero.Value[T](), err
		}

		acc = next
	}

	return acc, nil
}
