package suppress

// Raise panics with err. Inside an Ignored body it aborts the body the way a
// returned error would, from any call depth.
func Raise(err error) {
	panic(err)
}

// RaiseIfErr returns the value produced by fn, or raises its error.
func RaiseIfErr[T any](fn func() (T, error)) T {
	res, err := fn()
	if err != nil {
		Raise(err)
	}
	return res
}

func RaiseIfErrOnly(fn func() error) {
	if err := fn(); err != nil {
		Raise(err)
	}
}
