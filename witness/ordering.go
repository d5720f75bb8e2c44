package witness

import (
	"cmp"
	"slices"
	"sync"

	"facette.io/natsort"
	"github.com/amp-labs/amp-witness/sortable"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ordering is a three-way comparison: negative when a sorts before b,
// zero when they tie, positive otherwise.
type Ordering[A any] struct {
	Compare func(A, A) int
}

// NewOrdering wraps compare.
func NewOrdering[A any](compare func(A, A) int) Ordering[A] {
	return Ordering[A]{Compare: compare}
}

// Less reports whether a sorts strictly before b.
func (o Ordering[A]) Less(a, b A) bool {
	return o.Compare(a, b) < 0
}

// Equating treats values that tie under o as equal.
func (o Ordering[A]) Equating() Equating[A] {
	return NewEquating(func(a, b A) bool {
		return o.Compare(a, b) == 0
	})
}

// Natural uses the < operator.
func Natural[T cmp.Ordered]() Ordering[T] {
	return NewOrdering(cmp.Compare[T])
}

// Natsort orders strings so embedded numbers compare by value:
// "ride2" sorts before "ride10".
func Natsort() Ordering[string] {
	return NewOrdering(func(a, b string) int {
		switch {
		case natsort.Compare(a, b):
			return -1
		case natsort.Compare(b, a):
			return 1
		default:
			return 0
		}
	})
}

// Collated orders strings by the collation rules of tag, the way a sort
// shown to a user should.
func Collated(tag language.Tag, opts ...collate.Option) Ordering[string] {
	// Collators keep scratch buffers and are not safe for concurrent use.
	var mu sync.Mutex

	collator := collate.New(tag, opts...)

	return NewOrdering(func(a, b string) int {
		mu.Lock()
		defer mu.Unlock()

		return collator.CompareString(a, b)
	})
}

// OrderingFromSortable lifts a type's own LessThan and Equals methods into
// a witness.
func OrderingFromSortable[T sortable.Sortable[T]]() Ordering[T] {
	return NewOrdering(func(a, b T) int {
		switch {
		case a.LessThan(b):
			return -1
		case a.Equals(b):
			return 0
		default:
			return 1
		}
	})
}

// Reverse flips o.
func Reverse[A any](o Ordering[A]) Ordering[A] {
	return NewOrdering(func(a, b A) int {
		return o.Compare(b, a)
	})
}

// Then orders by first and breaks ties with second.
func Then[A any](first, second Ordering[A]) Ordering[A] {
	return NewOrdering(func(a, b A) int {
		if c := first.Compare(a, b); c != 0 {
			return c
		}

		return second.Compare(a, b)
	})
}

// Unordered ties every pair. It is the identity for Then.
func Unordered[A any]() Ordering[A] {
	return NewOrdering(func(A, A) int {
		return 0
	})
}

// OrderingMonoid combines orderings with Then, starting from Unordered.
func OrderingMonoid[A any]() Monoid[Ordering[A]] {
	return NewMonoid(Constant(Unordered[A]()), NewCombining(Then[A]))
}

// ContramapOrdering derives an Ordering for B that compares f(a) with f(b).
func ContramapOrdering[A, B any](o Ordering[A], f func(B) A) Ordering[B] {
	return NewOrdering(func(x, y B) int {
		return o.Compare(f(x), f(y))
	})
}

// Sorted returns a stably sorted copy of xs. xs is not modified.
func Sorted[A any](xs []A, o Ordering[A]) []A {
	out := slices.Clone(xs)
	slices.SortStableFunc(out, o.Compare)

	return out
}

// IsSorted reports whether xs is already in order under o.
func IsSorted[A any](xs []A, o Ordering[A]) bool {
	return slices.IsSortedFunc(xs, o.Compare)
}

// QuickSorted sorts by partitioning around the first element: the rest is
// split into elements that do not sort after the pivot and elements that
// do, each half is sorted the same way, and the pieces are joined. xs is
// not modified.
func QuickSorted[A any](xs []A, o Ordering[A]) []A {
	if len(xs) <= 1 {
		return slices.Clone(xs)
	}

	pivot, rest := xs[0], xs[1:]

	var lhs, rhs []A

	for _, x := range rest {
		if o.Compare(x, pivot) <= 0 {
			lhs = append(lhs, x)
		} else {
			rhs = append(rhs, x)
		}
	}

	out := make([]A, 0, len(xs))
	out = append(out, QuickSorted(lhs, o)...)
	out = append(out, pivot)

	return append(out, QuickSorted(rhs, o)...)
}
