// Package envutil reads typed configuration from environment variables.
package envutil

import (
	"log/slog"
	"os"

	"github.com/amp-labs/amp-witness/xform"
)

func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String reads a raw string variable.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

// Bool reads a variable parsed by xform.Bool.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), xform.Bool), opts)
}

// Int reads a base-10 integer variable.
func Int[I xform.Intish](key string, opts ...Option[I]) Reader[I] {
	return apply(Map(Map(get(key), xform.Int64), xform.CastNumeric[int64, I]), opts)
}

// Port reads a TCP/UDP port number.
func Port(key string, opts ...Option[uint16]) Reader[uint16] {
	return apply(Map(Map(get(key), xform.TrimString), xform.Port), opts)
}

// SlogLevel reads a log level, ignoring case and surrounding whitespace.
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(Map(Map(get(key), xform.TrimString), xform.ToLower), xform.SlogLevel), opts)
}
