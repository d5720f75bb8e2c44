// Package xform holds small fallible transformers, each shaped as
// func(A) (B, error), so they can be chained by envutil.Map.
package xform

import (
	"errors"
	"time"
)

var (
	ErrInvalidChoice   = errors.New("invalid choice")
	ErrNonPositive     = errors.New("value must be positive")
	ErrBadPort         = errors.New("invalid port number")
	ErrEmptyString     = errors.New("empty string")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

type Intish interface {
	int | int8 | int16 | int32 | int64 | time.Duration
}

type Numeric interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64 | int | uint | time.Duration
}
