// Package sortable defines ordering as a nominal capability and wraps a few
// primitives that implement it. See witness.OrderingFromSortable for the
// value form.
package sortable

import (
	"github.com/amp-labs/amp-witness/compare"
)

// Sortable is implemented by types that know their own order.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}
