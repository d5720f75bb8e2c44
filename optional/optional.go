// Package optional models a value that may be absent. A Value is a set of
// size zero or one.
package optional

import "fmt"

// Value holds a T or nothing. The zero Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some wraps value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None returns the empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// NonEmpty reports whether a value is present.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty reports whether no value is present.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and whether it was present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrElse returns the value, or defaultValue when empty.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// OrElse returns o when it holds a value, alternative otherwise.
func (o Value[T]) OrElse(alternative Value[T]) Value[T] {
	if o.isSet {
		return o
	}

	return alternative
}

// String renders "Some(value)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map applies f to a present value.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}
