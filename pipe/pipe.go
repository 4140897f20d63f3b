package pipe

// Pipe passes data through steps from left to right and returns the result.
// Each step receives the output of the previous one.
//
//	pipe.Pipe("  Hello ", strings.TrimSpace, strings.ToLower) // "hello"
func Pipe[T any](data T, steps ...func(T) T) T {
	for _, step := range steps {
		data = step(data)
	}
	return data
}

// TryPipe is Pipe for steps that may fail.
//
// The first non-nil error aborts the pipeline and is returned as is, together
// with the last value produced before the failing step. Steps that already ran
// are not undone.
func TryPipe[T any](data T, steps ...func(T) (T, error)) (T, error) {
	for _, step := range steps {
		next, err := step(data)
		if err != nil {
			return data, err
		}
		data = next
	}
	return data, nil
}

func Pipe2[A, B, C any](a A, f1 func(A) B, f2 func(B) C) C {
	return f2(f1(a))
}

func Pipe3[A, B, C, D any](a A, f1 func(A) B, f2 func(B) C, f3 func(C) D) D {
	return f3(f2(f1(a)))
}

func Pipe4[A, B, C, D, E any](
	a A,
	f1 func(A) B,
	f2 func(B) C,
	f3 func(C) D,
	f4 func(D) E,
) E {
	return f4(f3(f2(f1(a))))
}

func Pipe5[A, B, C, D, E, F any](
	a A,
	f1 func(A) B,
	f2 func(B) C,
	f3 func(C) D,
	f4 func(D) E,
	f5 func(E) F,
) F {
	return f5(f4(f3(f2(f1(a)))))
}

func Pipe6[A, B, C, D, E, F, G any](
	a A,
	f1 func(A) B,
	f2 func(B) C,
	f3 func(C) D,
	f4 func(D) E,
	f5 func(E) F,
	f6 func(F) G,
) G {
	return f6(f5(f4(f3(f2(f1(a))))))
}
