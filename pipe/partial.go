package pipe

// The binders below turn a multi-argument function into a pipeline step.
// The running value is always passed as the first argument, followed by the
// bound arguments: Partial2(fn, a, b)(v) == fn(v, a, b).

func Partial1[T, A, R any](fn func(T, A) R, a A) func(T) R {
	return func(v T) R {
		return fn(v, a)
	}
}

func Partial2[T, A, B, R any](fn func(T, A, B) R, a A, b B) func(T) R {
	return func(v T) R {
		return fn(v, a, b)
	}
}

func Partial3[T, A, B, C, R any](fn func(T, A, B, C) R, a A, b B, c C) func(T) R {
	return func(v T) R {
		return fn(v, a, b, c)
	}
}

// Variadic binds any number of trailing arguments of a variadic function.
// It also covers functional options: Variadic(render, WithIndent(2), Sorted()).
func Variadic[T, A, R any](fn func(T, ...A) R, args ...A) func(T) R {
	return func(v T) R {
		return fn(v, args...)
	}
}

// WithOptions binds a single options value. Go has no keyword arguments, so
// named parameters travel together in one struct.
func WithOptions[T, O, R any](fn func(T, O) R, opts O) func(T) R {
	return func(v T) R {
		return fn(v, opts)
	}
}
