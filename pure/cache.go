package pure

// Cache memoizes a single-argument pure function. It is CacheI1O1.
//
//	var fib func(int) int
//	fib = pure.Cache(func(n int) int {
//	    if n < 2 {
//	        return n
//	    }
//	    return fib(n-1) + fib(n-2)
//	})
func Cache[I comparable, O any](pureFn func(I) O) func(I) O {
	return CacheI1O1(pureFn)
}

func CacheI1O1[I1 comparable, O1 any](pureFn func(I1) O1) func(I1) O1 {
	cached := cache(func(args ...any) O1 {
		return pureFn(args[0].(I1))
	})
	return func(i1 I1) O1 {
		return cached(i1)
	}
}

func CacheI2O1[I1, I2 comparable, O1 any](pureFn func(I1, I2) O1) func(I1, I2) O1 {
	cached := cache(func(args ...any) O1 {
		return pureFn(args[0].(I1), args[1].(I2))
	})
	return func(i1 I1, i2 I2) O1 {
		return cached(i1, i2)
	}
}

func CacheI3O1[I1, I2, I3 comparable, O1 any](pureFn func(I1, I2, I3) O1) func(I1, I2, I3) O1 {
	cached := cache(func(args ...any) O1 {
		return pureFn(args[0].(I1), args[1].(I2), args[2].(I3))
	})
	return func(i1 I1, i2 I2, i3 I3) O1 {
		return cached(i1, i2, i3)
	}
}

func CacheI4O1[I1, I2, I3, I4 comparable, O1 any](
	pureFn func(I1, I2, I3, I4) O1,
) func(I1, I2, I3, I4) O1 {
	cached := cache(func(args ...any) O1 {
		return pureFn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
	})
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O1 {
		return cached(i1, i2, i3, i4)
	}
}

func cache[O any](pureFn func(...any) O) func(...any) O {
	memo := NewTrie[O]()
	return func(args ...any) O {
		v, ok := memo.Load(args)
		if !ok {
			v = pureFn(args...)
			memo.Store(args, v)
		}
		return v
	}
}
