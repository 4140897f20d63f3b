package pure_test

import (
	"testing"

	"github.com/sotte/pelper/pure"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkCachedFib20(b *testing.B) {
	var fib func(int) int
	fib = pure.Cache(func(n int) int {
		if n <= 1 {
			return n
		}
		return fib(n-1) + fib(n-2)
	})

	for i := 0; i < b.N; i++ {
		_ = fib(20)
	}
}

func naiveLevenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return naiveLevenshtein(a[1:], b[1:])
	}
	return 1 + min(
		naiveLevenshtein(a[1:], b),
		naiveLevenshtein(a, b[1:]),
		naiveLevenshtein(a[1:], b[1:]),
	)
}

func BenchmarkNaiveLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveLevenshtein("kitten", "sitting")
	}
}

func BenchmarkCachedLevenshtein(b *testing.B) {
	var lev func(string, string) int
	lev = pure.CacheI2O1(func(a, b string) int {
		if len(a) == 0 {
			return len(b)
		}
		if len(b) == 0 {
			return len(a)
		}
		if a[0] == b[0] {
			return lev(a[1:], b[1:])
		}
		return 1 + min(
			lev(a[1:], b),
			lev(a, b[1:]),
			lev(a[1:], b[1:]),
		)
	})

	for i := 0; i < b.N; i++ {
		_ = lev("kitten", "sitting")
	}
}

func BenchmarkCachedHashedSum(b *testing.B) {
	sum := pure.CacheHashed(func(xs []int) int {
		total := 0
		for _, x := range xs {
			total += x
		}
		return total
	})
	xs := []int{1, 2, 3, 4, 5, 6, 7, 8}

	for i := 0; i < b.N; i++ {
		_ = sum(xs)
	}
}
