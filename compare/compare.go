// Package compare defines equality as a nominal capability, implemented by
// the type itself. See witness.EquatingFromComparable for the value form.
package compare

// Comparable is implemented by types that decide their own equality.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals delegates to a.Equals(b).
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
