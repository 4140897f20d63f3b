// Package effects holds the side-effecting pipeline helpers: steps that print
// or observe a value and then hand it on unchanged.
//
// Output goes through a Sink, a plain func(string). Stdout is the default;
// WriterSink adapts any io.Writer and the log subpackage adapts a zap logger,
// so the same step can print in a script and log in a service.
//
//	pipe.Pipe([]int{3, 1, 2},
//	    effects.PrintReturn[[]int],
//	    sorted,
//	)
package effects
