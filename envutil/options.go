package envutil

// Option modifies a Reader. Readers such as String and Bool accept options
// for defaults, missing-value errors, fallbacks and validation.
type Option[T any] func(Reader[T]) Reader[T]

// Default supplies a value for an absent variable.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// IfMissing attaches err to an absent variable.
func IfMissing[T any](err error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithErrorIfMissing(err)
	}
}

// Fallback substitutes f for an absent variable.
func Fallback[T any](f Reader[T]) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithFallback(f)
	}
}

// Validate runs f against a present value and records its error.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.Map(func(val T) (T, error) {
			return val, f(val)
		})
	}
}
