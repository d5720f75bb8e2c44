// Package zero provides zero values of generic types.
package zero

import "reflect"

// Value returns the zero value of T.
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value deeply equals the zero value of T.
func IsZero[T any](value T) bool {
	return reflect.DeepEqual(value, Value[T]())
}
