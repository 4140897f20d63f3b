package pure

// The O2 wrappers memoize functions with two results. When the second result
// is a non-nil error the call is not stored, so a failing call is retried the
// next time it is made.

func CacheI1O2[I1 comparable, O1, O2 any](pureFn func(I1) (O1, O2)) func(I1) (O1, O2) {
	cached := cacheDual(func(args ...any) (O1, O2) {
		return pureFn(args[0].(I1))
	})
	return func(i1 I1) (O1, O2) {
		return cached(i1)
	}
}

func CacheI2O2[I1, I2 comparable, O1, O2 any](pureFn func(I1, I2) (O1, O2)) func(I1, I2) (O1, O2) {
	cached := cacheDual(func(args ...any) (O1, O2) {
		return pureFn(args[0].(I1), args[1].(I2))
	})
	return func(i1 I1, i2 I2) (O1, O2) {
		return cached(i1, i2)
	}
}

func CacheI3O2[I1, I2, I3 comparable, O1, O2 any](
	pureFn func(I1, I2, I3) (O1, O2),
) func(I1, I2, I3) (O1, O2) {
	cached := cacheDual(func(args ...any) (O1, O2) {
		return pureFn(args[0].(I1), args[1].(I2), args[2].(I3))
	})
	return func(i1 I1, i2 I2, i3 I3) (O1, O2) {
		return cached(i1, i2, i3)
	}
}

func CacheI4O2[I1, I2, I3, I4 comparable, O1, O2 any](
	pureFn func(I1, I2, I3, I4) (O1, O2),
) func(I1, I2, I3, I4) (O1, O2) {
	cached := cacheDual(func(args ...any) (O1, O2) {
		return pureFn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
	})
	return func(i1 I1, i2 I2, i3 I3, i4 I4) (O1, O2) {
		return cached(i1, i2, i3, i4)
	}
}

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func cacheDual[O1, O2 any](pureFn func(...any) (O1, O2)) func(...any) (O1, O2) {
	memo := NewTrie[result[O1, O2]]()
	return func(args ...any) (O1, O2) {
		res, ok := memo.Load(args)
		if ok {
			return res.O1, res.O2
		}
		v1, v2 := pureFn(args...)
		if err, isErr := any(v2).(error); isErr && err != nil {
			return v1, v2
		}
		memo.Store(args, result[O1, O2]{O1: v1, O2: v2})
		return v1, v2
	}
}
