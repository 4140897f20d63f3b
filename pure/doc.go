// Package pure memoizes pure functions by their argument values.
//
// Caching forces a question on the caller: is this function really pure?
// A cached function must depend on its arguments only. Wrapping anything
// that reads the clock, the network or mutable state freezes the first
// answer forever.
//
// The Cache family covers one to four comparable arguments with one or two
// results. CacheHashed covers a single argument that is not comparable.
// Tables are unbounded, never evicted and live as long as the wrapper. They
// are not safe for concurrent use.
//
// Recursive functions memoize their own recursion by assigning the wrapper
// to the variable they call:
//
//	var fib func(int) int
//	fib = pure.Cache(func(n int) int {
//	    if n < 2 {
//	        return n
//	    }
//	    return fib(n-1) + fib(n-2)
//	})
package pure
