// Package timing measures and reports wall-clock durations.
//
// Every measurement produces one line, "<message> <seconds>s" with six
// decimals, written to a sink (stdout by default), and a structured Report
// handed to an optional observer.
//
//	func load() {
//	    defer timing.Start(timing.WithMessage("load")).Stop()
//	    ...
//	}
//
//	parse := timing.WrapErr(strconv.Atoi, timing.WithMessage("parse took"))
package timing
