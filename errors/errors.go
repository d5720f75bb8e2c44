// Package errors accumulates independent failures into one error value.
package errors

import "errors"

// Collection gathers errors from several independent checks so they can be
// reported together. It is not safe for concurrent use.
type Collection struct {
	errors []error
}

// Add appends err. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// HasError reports whether at least one error was collected.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns nil for an empty collection, the error itself when there
// is exactly one (unwrapped, so identity is preserved), and errors.Join of
// all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
