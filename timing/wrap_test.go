package timing_test

import (
	"testing"
	"time"

	"github.com/sotte/pelper/timing"
	"github.com/stretchr/testify/assert"
	"github.com/zoobzio/clockz"
)

func TestWrap_ReturnsOriginalResultAndReportsOncePerCall(t *testing.T) {
	clock := clockz.NewFakeClock()
	rec := &recorder{}
	calls := 0

	square := timing.Wrap(func(x int) int {
		calls++
		clock.Advance(time.Duration(x) * time.Millisecond)
		return x * x
	}, timing.WithMessage("f took"), timing.WithClock(clock), timing.WithSink(rec.sink))

	assert.Equal(t, 0, calls, "wrapping does not call fn")
	assert.Equal(t, 9, square(3))
	assert.Equal(t, 16, square(4))
	assert.Equal(t, 2, calls)
	assert.Equal(t, []string{"f took 0.003000s", "f took 0.004000s"}, rec.lines)
}

func TestWrapErr_ReportsOnError(t *testing.T) {
	clock := clockz.NewFakeClock()
	rec := &recorder{}

	parse := timing.WrapErr(func(s string) (int, error) {
		clock.Advance(time.Second)
		if s == "" {
			return 0, errBoom
		}
		return len(s), nil
	}, timing.WithClock(clock), timing.WithSink(rec.sink))

	n, err := parse("abc")
	assert.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = parse("")
	assert.True(t, err == errBoom, "error must be returned unchanged")
	assert.Equal(t, []string{"Duration 1.000000s", "Duration 1.000000s"}, rec.lines)
}

func TestWrap_ReportsOnPanic(t *testing.T) {
	rec := &recorder{}
	fail := timing.Wrap(func(int) int { panic("bad") }, timing.WithSink(rec.sink))

	assert.PanicsWithValue(t, "bad", func() { fail(1) })
	assert.Len(t, rec.lines, 1)
}

func TestFunc(t *testing.T) {
	clock := clockz.NewFakeClock()
	rec := &recorder{}
	var reports []timing.Report

	f := timing.Func(func() {
		clock.Advance(time.Minute)
	},
		timing.WithClock(clock),
		timing.WithSink(rec.sink),
		timing.WithObserver(func(r timing.Report) { reports = append(reports, r) }),
	)

	f()
	f()
	assert.Equal(t, []string{"Duration 60.000000s", "Duration 60.000000s"}, rec.lines)
	assert.Len(t, reports, 2)
	assert.NotEqual(t, reports[0].ID, reports[1].ID, "each call owns its own timer")
}
