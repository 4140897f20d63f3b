package timing

import (
	"github.com/sotte/pelper/effects"
	"github.com/zoobzio/clockz"
)

// DefaultMessage prefixes reports of timers without a message.
const DefaultMessage = "Duration"

type Config struct {
	Message  string       // default: DefaultMessage
	Sink     effects.Sink // default: effects.Stdout
	Clock    clockz.Clock // default: clockz.RealClock
	Observer func(Report) // default: none
}

type Option func(*Config)

// WithMessage sets the text printed before the measured time.
func WithMessage(msg string) Option {
	return func(c *Config) { c.Message = msg }
}

// WithSink sends the report line to sink instead of stdout, e.g. a logger.
func WithSink(sink effects.Sink) Option {
	return func(c *Config) { c.Sink = sink }
}

func WithClock(clock clockz.Clock) Option {
	return func(c *Config) { c.Clock = clock }
}

// WithObserver receives the structured Report after the line was written.
func WithObserver(fn func(Report)) Option {
	return func(c *Config) { c.Observer = fn }
}

func newConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	c.Sink = c.Sink.OrStdout()
	if c.Clock == nil {
		c.Clock = clockz.RealClock
	}
	if c.Observer == nil {
		c.Observer = func(Report) {}
	}
	return c
}
