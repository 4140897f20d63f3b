package timing

// Do runs fn inside a timed scope.
func Do(fn func(), opts ...Option) {
	defer Start(opts...).Stop()
	fn()
}

// Func wraps fn so that every call is timed.
func Func(fn func(), opts ...Option) func() {
	cfg := newConfig(opts...)
	return func() {
		defer cfg.start().Stop()
		fn()
	}
}

// Wrap wraps fn so that every call is timed. The result of fn is returned
// unchanged and exactly one report is emitted per call.
func Wrap[T, R any](fn func(T) R, opts ...Option) func(T) R {
	cfg := newConfig(opts...)
	return func(v T) R {
		defer cfg.start().Stop()
		return fn(v)
	}
}

// WrapErr is Wrap for functions that can fail. The report is emitted whether
// or not fn returns an error; the error itself is returned as is.
func WrapErr[T, R any](fn func(T) (R, error), opts ...Option) func(T) (R, error) {
	cfg := newConfig(opts...)
	return func(v T) (R, error) {
		defer cfg.start().Stop()
		return fn(v)
	}
}

func (c Config) start() *Timer {
	return (&Timer{config: c}).Start()
}
