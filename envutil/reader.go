//nolint:ireturn
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is a value read from an environment variable, together with
// whether it was present and any error produced while transforming it.
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

// NewReader builds a Reader from raw parts, for callers that source values
// from somewhere other than the process environment.
func NewReader[T any](key string, present bool, err error, value T) Reader[T] {
	return Reader[T]{
		key:     key,
		present: present,
		value:   value,
		err:     err,
	}
}

// Key returns the environment variable name.
func (e Reader[A]) Key() string {
	return e.key
}

// Value returns the value, or an error if it is missing or failed to parse.
func (e Reader[A]) Value() (A, error) {
	if e.err != nil {
		return e.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, e.key, e.err)
	}

	if !e.present {
		return e.value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	}

	return e.value, nil
}

// ValueOrPanic is Value, panicking on error.
func (e Reader[A]) ValueOrPanic() A {
	value, err := e.Value()
	if err != nil {
		panic(err)
	}

	return value
}

// ValueOrFatal is Value, exiting the process on error.
func (e Reader[A]) ValueOrFatal() A {
	value, err := e.Value()
	if err != nil {
		slog.Error("error reading environment variable", "key", e.key, "error", err)
		os.Exit(1)
	}

	return value
}

// ValueOrElse returns the value, or v if it is missing or failed to parse.
// Parse failures are logged at warn level before falling back.
func (e Reader[A]) ValueOrElse(v A) A {
	if e.present && e.err == nil {
		return e.value
	}

	if e.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", e.key, "error", e.err, "fallback", v)
	}

	return v
}

// HasValue reports whether the variable was set and parsed cleanly.
func (e Reader[A]) HasValue() bool {
	return e.present && e.err == nil
}

// HasError reports whether reading or transforming the variable failed.
func (e Reader[A]) HasError() bool {
	return e.err != nil
}

// Error returns the transformation error, if any.
func (e Reader[A]) Error() error {
	return e.err
}

// String renders the reader as KEY=value. Readers produced by envutil
// readers of secrets should not be printed this way.
func (e Reader[A]) String() string {
	if e.present && e.err == nil {
		return fmt.Sprintf("%s=%v", e.key, e.value)
	}

	if e.err != nil {
		return fmt.Sprintf("%s=<error: %v>", e.key, e.err)
	}

	return e.key + "=<not set>"
}

// WithErrorIfMissing attaches err when the variable is absent. Present
// values and existing errors pass through untouched.
func (e Reader[A]) WithErrorIfMissing(err error) Reader[A] {
	if e.present || e.err != nil {
		return e
	}

	return Reader[A]{
		key: e.key,
		err: err,
	}
}

// WithDefault supplies v when the variable is absent.
func (e Reader[A]) WithDefault(v A) Reader[A] {
	if e.present {
		return e
	}

	return Reader[A]{
		key:     e.key,
		present: true,
		err:     e.err,
		value:   v,
	}
}

// WithFallback substitutes another Reader when the variable is absent.
func (e Reader[A]) WithFallback(v Reader[A]) Reader[A] {
	if e.present {
		return e
	}

	return v
}

// Map transforms the value, keeping the type.
func (e Reader[A]) Map(f func(A) (A, error)) Reader[A] {
	return Map(e, f)
}

// Map transforms a Reader's value with f. Absent or failed readers skip f
// and carry their state over to the new type.
func Map[A any, B any](env Reader[A], f func(A) (B, error)) Reader[B] {
	if !env.present || env.err != nil {
		return Reader[B]{
			key:     env.key,
			present: env.present,
			err:     env.err,
		}
	}

	val, err := f(env.value)

	return Reader[B]{
		key:     env.key,
		present: true,
		err:     err,
		value:   val,
	}
}
