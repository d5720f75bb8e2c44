// Package set is a hash set whose notion of equality comes from witnesses
// rather than from methods on the element type. The same element type can
// live in sets that disagree about which values are duplicates.
package set

import (
	"iter"
	"maps"
	"slices"

	"github.com/amp-labs/amp-witness/witness"
)

// Set is a collection of unique elements. Elements are bucketed by hash and
// values that share a bucket are told apart by the Equating witness. It is
// not safe for concurrent use.
type Set[T any] struct {
	hashing  witness.Hashing[T]
	equating witness.Equating[T]
	buckets  map[uint64][]T
	size     int
}

// New creates an empty Set. Values that eq considers equal must hash the
// same under h.
func New[T any](h witness.Hashing[T], eq witness.Equating[T]) *Set[T] {
	return &Set[T]{
		hashing:  h,
		equating: eq,
		buckets:  make(map[uint64][]T),
	}
}

// Of creates a Set holding elements.
func Of[T any](h witness.Hashing[T], eq witness.Equating[T], elements ...T) *Set[T] {
	s := New(h, eq)
	s.AddAll(elements...)

	return s
}

// Add inserts element. It reports whether the set changed.
func (s *Set[T]) Add(element T) bool {
	key := s.hashing.Hash(element)

	if s.indexIn(key, element) >= 0 {
		return false
	}

	s.buckets[key] = append(s.buckets[key], element)
	s.size++

	return true
}

// AddAll inserts every element.
func (s *Set[T]) AddAll(elements ...T) {
	for _, e := range elements {
		s.Add(e)
	}
}

// Remove deletes element. It reports whether the set changed.
func (s *Set[T]) Remove(element T) bool {
	key := s.hashing.Hash(element)

	idx := s.indexIn(key, element)
	if idx < 0 {
		return false
	}

	bucket := slices.Delete(s.buckets[key], idx, idx+1)
	if len(bucket) == 0 {
		delete(s.buckets, key)
	} else {
		s.buckets[key] = bucket
	}

	s.size--

	return true
}

// Contains reports whether an element equal to element is present.
func (s *Set[T]) Contains(element T) bool {
	return s.indexIn(s.hashing.Hash(element), element) >= 0
}

// Clear removes all elements.
func (s *Set[T]) Clear() {
	clear(s.buckets)
	s.size = 0
}

// Size returns the number of elements.
func (s *Set[T]) Size() int {
	return s.size
}

// Seq yields every element. The order is not guaranteed.
func (s *Set[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for bucket := range maps.Values(s.buckets) {
			for _, e := range bucket {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Entries returns the elements as a slice. The order is not guaranteed.
func (s *Set[T]) Entries() []T {
	return slices.AppendSeq(make([]T, 0, s.size), s.Seq())
}

// Sorted returns the elements ordered by o.
func (s *Set[T]) Sorted(o witness.Ordering[T]) []T {
	return witness.Sorted(s.Entries(), o)
}

// Clone returns an independent copy sharing the same witnesses.
func (s *Set[T]) Clone() *Set[T] {
	out := New(s.hashing, s.equating)

	for key, bucket := range s.buckets {
		out.buckets[key] = slices.Clone(bucket)
	}

	out.size = s.size

	return out
}

// Union returns a new set with the elements of both. The result uses s's
// witnesses.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := s.Clone()

	for e := range other.Seq() {
		out.Add(e)
	}

	return out
}

// Intersection returns a new set with the elements of s also found in
// other.
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	return s.Filter(other.Contains)
}

// Filter returns a new set with the elements that satisfy predicate.
func (s *Set[T]) Filter(predicate func(T) bool) *Set[T] {
	out := New(s.hashing, s.equating)

	for e := range s.Seq() {
		if predicate(e) {
			out.Add(e)
		}
	}

	return out
}

func (s *Set[T]) indexIn(key uint64, element T) int {
	return slices.IndexFunc(s.buckets[key], func(e T) bool {
		return s.equating.Equals(e, element)
	})
}

// UnionMonoid combines sets by union, starting from an empty set built
// with h and eq.
func UnionMonoid[T any](h witness.Hashing[T], eq witness.Equating[T]) witness.Monoid[*Set[T]] {
	return witness.NewMonoid(
		witness.NewEmptyInitializing(func() *Set[T] { return New(h, eq) }),
		witness.NewCombining((*Set[T]).Union),
	)
}
