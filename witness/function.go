package witness

// Identity returns the identity function on A.
func Identity[A any]() func(A) A {
	return func(a A) A {
		return a
	}
}

// Compose returns the function x -> f(g(x)).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}
