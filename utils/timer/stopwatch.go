package timer

import (
	"time"
)

type Clock func() time.Time

// Stopwatch measures wall-clock time between Start and Elapsed.
type Stopwatch interface {
	Start()
	Elapsed() time.Duration
}

type stopwatch struct {
	clock   Clock
	startTs time.Time
}

func NewStopwatch() Stopwatch {
	return NewStopwatchWithClock(time.Now)
}

func NewStopwatchWithClock(clock Clock) Stopwatch {
	return &stopwatch{
		clock: clock,
	}
}

func (s *stopwatch) Start() {
	s.startTs = s.clock()
}

// Elapsed returns 0 if Start was never called.
func (s *stopwatch) Elapsed() time.Duration {
	if s.startTs.IsZero() {
		return 0
	}
	return s.clock().Sub(s.startTs)
}
