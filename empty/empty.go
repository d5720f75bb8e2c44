// Package empty returns non-nil empty collections.
package empty

// Slice returns a non-nil slice of length and capacity zero. JSON encodes
// it as [] rather than null.
func Slice[T any]() []T {
	return []T{}
}

// Map returns a non-nil map of length zero, safe to insert into.
func Map[K comparable, V any]() map[K]V {
	return make(map[K]V)
}
