package timing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
)

// Report describes one measured scope.
type Report struct {
	ID      string // unique per Start
	Message string
	Span    timespan.TimeSpan
	Elapsed time.Duration
}

// Line renders the report as "<message> <seconds>s" with six decimals,
// using DefaultMessage when no message was configured.
func (r Report) Line() string {
	msg := r.Message
	if msg == "" {
		msg = DefaultMessage
	}
	return fmt.Sprintf("%s %.6fs", msg, r.Elapsed.Seconds())
}

// Timer measures wall-clock time between Start and Stop and reports it.
//
// A Timer holds a single start instant: it must not be shared by goroutines or
// by overlapping scopes. The wrappers in this package create one Timer per
// call for that reason.
type Timer struct {
	id      string
	start   time.Time
	started bool
	config  Config
}

func New(opts ...Option) *Timer {
	return &Timer{config: newConfig(opts...)}
}

// Start creates a Timer and starts it. Together with defer it times the rest
// of the enclosing function, whichever way it exits:
//
//	defer timing.Start(timing.WithMessage("import")).Stop()
func Start(opts ...Option) *Timer {
	return New(opts...).Start()
}

// Start records the current instant and returns t.
func (t *Timer) Start() *Timer {
	t.id = uuid.New().String()
	t.start = t.config.Clock.Now()
	t.started = true
	return t
}

// Stop computes the elapsed time since Start, writes the report line to the
// sink, hands the Report to the observer and returns it.
//
// Stop knows nothing about how the timed code exited. When it runs deferred
// during a panic or after an error, the report looks exactly like a normal
// one: errors are neither included nor swallowed.
func (t *Timer) Stop() Report {
	if !t.started {
		panic("timing: Stop called before Start")
	}
	end := t.config.Clock.Now()
	t.started = false

	r := Report{
		ID:      t.id,
		Message: t.config.Message,
		Span:    timespan.BetweenTimes(t.start, end),
		Elapsed: end.Sub(t.start),
	}
	t.config.Sink(r.Line())
	t.config.Observer(r)
	return r
}
