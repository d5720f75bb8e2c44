package xform

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

const portMax = 65535

// TrimString removes leading and trailing whitespace from a string.
func TrimString(s string) (string, error) {
	return strings.TrimSpace(s), nil
}

// ToLower converts a string to lowercase.
func ToLower(s string) (string, error) {
	return strings.ToLower(s), nil
}

// NonEmpty rejects the empty string with ErrEmptyString.
func NonEmpty(s string) (string, error) {
	if s == "" {
		return s, ErrEmptyString
	}

	return s, nil
}

// OneOf returns a transformer that only lets through the given choices.
func OneOf[A comparable](choices ...A) func(A) (A, error) { //nolint:ireturn
	return func(value A) (A, error) {
		if slices.Contains(choices, value) {
			return value, nil
		}

		return value, fmt.Errorf("%w: %v", ErrInvalidChoice, value)
	}
}

// Bool parses a string as a boolean value, using strconv.ParseBool rules.
func Bool(value string) (bool, error) {
	return strconv.ParseBool(value)
}

// Int64 parses a string as a base-10 int64.
func Int64(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

// CastNumeric converts between numeric types. It may truncate.
func CastNumeric[A Numeric, B Numeric](value A) (B, error) { //nolint:ireturn
	return B(value), nil
}

// Positive rejects values less than or equal to zero.
func Positive[A Numeric](value A) (A, error) { //nolint:ireturn
	if value <= 0 {
		return value, fmt.Errorf("%w: %v", ErrNonPositive, value)
	}

	return value, nil
}

// Port parses a TCP/UDP port number in the range 0-65535.
func Port(value string) (uint16, error) {
	port, err := Int64(value)
	if err != nil {
		return 0, err
	}

	if port < 0 || port > portMax {
		return 0, fmt.Errorf("%w: %d", ErrBadPort, port)
	}

	return uint16(port), nil
}

// SlogLevel parses "debug", "info", "warn" or "error" (case-sensitive).
func SlogLevel(value string) (slog.Level, error) {
	switch value {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
