package effects

import (
	"fmt"
	"io"
	"os"
)

// Sink receives one rendered line of output, without trailing newline.
// Any func(string) fits: fmt.Println, a logger method, a test recorder.
type Sink func(string)

// Stdout writes each line to os.Stdout. It is the default sink of this module.
func Stdout(line string) {
	fmt.Fprintln(os.Stdout, line)
}

// WriterSink adapts w into a Sink. Write errors are dropped.
func WriterSink(w io.Writer) Sink {
	return func(line string) {
		fmt.Fprintln(w, line)
	}
}

// OrStdout returns s, or Stdout when s is nil.
func (s Sink) OrStdout() Sink {
	if s == nil {
		return Stdout
	}
	return s
}
