package effects

import "fmt"

// Returning calls fn with data, throws its result away and returns data.
//
// It lets a pipeline run a side effect (printing, logging, collecting) without
// changing what flows to the next step. Bind extra arguments with the pipe
// package:
//
//	effects.Returning(order, pipe.Partial1(audit.Record, "checkout"))
func Returning[T, R any](data T, fn func(T) R) T {
	_ = fn(data)
	return data
}

// Tap turns fn into a pipeline step that passes its input through unchanged.
func Tap[T any](fn func(T)) func(T) T {
	return func(data T) T {
		fn(data)
		return data
	}
}

// PrintReturn prints data to stdout and returns it.
func PrintReturn[T any](data T) T {
	return PrintReturnTo[T](Stdout)(data)
}

// PrintReturnTo is PrintReturn writing to sink instead of stdout.
func PrintReturnTo[T any](sink Sink) func(T) T {
	sink = sink.OrStdout()
	return Tap(func(data T) {
		sink(fmt.Sprint(data))
	})
}

// Printf formats according to format and writes the result as one line to stdout.
func Printf(format string, args ...any) {
	FprintfTo(Stdout, format, args...)
}

func FprintfTo(sink Sink, format string, args ...any) {
	sink.OrStdout()(fmt.Sprintf(format, args...))
}
