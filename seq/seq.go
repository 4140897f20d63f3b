package seq

import "iter"

// Take returns the first n values of s. It returns fewer values if s ends
// first and an empty slice when n <= 0. Take stops pulling from s after n
// values, so s may be infinite.
func Take[T any](s iter.Seq[T], n int) []T {
	out := make([]T, 0)
	if n <= 0 {
		return out
	}
	for v := range s {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// Nth returns the value at zero-based position n of s.
// The boolean is false if s has fewer than n+1 values or n is negative.
func Nth[T any](s iter.Seq[T], n int) (T, bool) {
	if n >= 0 {
		i := 0
		for v := range s {
			if i == n {
				return v, true
			}
			i++
		}
	}
	var zero T
	return zero, false
}

// NthOr is Nth with a caller supplied default for missing positions.
func NthOr[T any](s iter.Seq[T], n int, def T) T {
	if v, ok := Nth(s, n); ok {
		return v
	}
	return def
}

// Map lazily applies fn to every value of s.
func Map[T, R any](s iter.Seq[T], fn func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range s {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// Filter lazily yields the values of s for which fn returns true.
func Filter[T any](s iter.Seq[T], fn func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if fn(v) && !yield(v) {
				return
			}
		}
	}
}
