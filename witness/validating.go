package witness

import (
	"github.com/amp-labs/amp-witness/errors"
)

// Validating checks a value of A, returning nil when it is acceptable.
type Validating[A any] struct {
	Validate func(A) error
}

// NewValidating wraps validate.
func NewValidating[A any](validate func(A) error) Validating[A] {
	return Validating[A]{Validate: validate}
}

// Valid accepts everything.
func Valid[A any]() Validating[A] {
	return NewValidating(func(A) error {
		return nil
	})
}

// Check returns err whenever pred rejects the value.
func Check[A any](pred func(A) bool, err error) Validating[A] {
	return NewValidating(func(a A) error {
		if pred(a) {
			return nil
		}

		return err
	})
}

// All runs every validator and reports all failures. A single failure comes
// back as the exact error its validator returned; several are joined.
func All[A any](validators ...Validating[A]) Validating[A] {
	return NewValidating(func(a A) error {
		var errs errors.Collection

		for _, v := range validators {
			errs.Add(v.Validate(a))
		}

		return errs.GetError()
	})
}

// ValidatingMonoid combines validators with All, starting from Valid.
func ValidatingMonoid[A any]() Monoid[Validating[A]] {
	return NewMonoid(Constant(Valid[A]()), NewCombining(func(x, y Validating[A]) Validating[A] {
		return All(x, y)
	}))
}

// ContramapValidating derives a Validating for B that validates f(b).
func ContramapValidating[A, B any](v Validating[A], f func(B) A) Validating[B] {
	return NewValidating(func(b B) error {
		return v.Validate(f(b))
	})
}
