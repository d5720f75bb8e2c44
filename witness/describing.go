package witness

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Describing renders values of A as strings.
type Describing[A any] struct {
	Describe func(A) string
}

// NewDescribing wraps describe.
func NewDescribing[A any](describe func(A) string) Describing[A] {
	return Describing[A]{Describe: describe}
}

// Contramap derives a Describing for B by converting with f before
// delegating to d.
func Contramap[A, B any](d Describing[A], f func(B) A) Describing[B] {
	return Describing[B]{
		Describe: func(b B) string {
			return d.Describe(f(b))
		},
	}
}

// Sprint describes values with fmt.Sprint.
func Sprint[A any]() Describing[A] {
	return NewDescribing(func(a A) string {
		return fmt.Sprint(a)
	})
}

// Stringer describes values with their own String method.
func Stringer[A fmt.Stringer]() Describing[A] {
	return NewDescribing(func(a A) string {
		return a.String()
	})
}

// Int describes ints in base 10.
func Int() Describing[int] {
	return NewDescribing(strconv.Itoa)
}

// Quoted describes strings as Go string literals.
func Quoted() Describing[string] {
	return NewDescribing(strconv.Quote)
}

// JSON describes values as compact JSON. Marshal failures render as
// %!json(<error>).
func JSON[A any]() Describing[A] {
	return NewDescribing(func(a A) string {
		data, err := json.Marshal(a)
		if err != nil {
			return fmt.Sprintf("%%!json(%v)", err)
		}

		return string(data)
	})
}

// YAML describes values as a YAML document without the trailing newline.
// Marshal failures render as %!yaml(<error>).
func YAML[A any]() Describing[A] {
	return NewDescribing(func(a A) string {
		data, err := yaml.Marshal(a)
		if err != nil {
			return fmt.Sprintf("%%!yaml(%v)", err)
		}

		return strings.TrimSuffix(string(data), "\n")
	})
}

// Tagged prefixes every description from d with "[tag] ".
func Tagged[A any](tag string, d Describing[A]) Describing[A] {
	return NewDescribing(func(a A) string {
		return "[" + tag + "] " + d.Describe(a)
	})
}
