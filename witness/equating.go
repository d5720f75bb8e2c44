package witness

import (
	"strings"

	"github.com/amp-labs/amp-witness/compare"
)

// Equating decides whether two values of A are equal.
type Equating[A any] struct {
	Equals func(A, A) bool
}

// NewEquating wraps equals.
func NewEquating[A any](equals func(A, A) bool) Equating[A] {
	return Equating[A]{Equals: equals}
}

// Equal uses ==.
func Equal[T comparable]() Equating[T] {
	return NewEquating(func(a, b T) bool {
		return a == b
	})
}

// EqualFold compares strings under Unicode case folding.
func EqualFold() Equating[string] {
	return NewEquating(strings.EqualFold)
}

// EquatingFromComparable lifts a type's own Equals method into a witness.
func EquatingFromComparable[T compare.Comparable[T]]() Equating[T] {
	return NewEquating(func(a, b T) bool {
		return compare.Equals[T](a, b)
	})
}

// ContramapEquating derives an Equating for B that compares f(a) with f(b).
func ContramapEquating[A, B any](e Equating[A], f func(B) A) Equating[B] {
	return NewEquating(func(x, y B) bool {
		return e.Equals(f(x), f(y))
	})
}
