package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type mockClock struct {
	now time.Time
}

func (c *mockClock) Now() time.Time {
	return c.now
}

func (c *mockClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestStopwatch(t *testing.T) {
	clock := &mockClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	sw := NewStopwatchWithClock(clock.Now)
	require.Equal(t, time.Duration(0), sw.Elapsed())
	sw.Start()
	clock.Advance(1500 * time.Millisecond)
	require.Equal(t, 1500*time.Millisecond, sw.Elapsed())
	clock.Advance(time.Second)
	require.Equal(t, 2500*time.Millisecond, sw.Elapsed())
	sw.Start()
	clock.Advance(time.Millisecond)
	require.Equal(t, time.Millisecond, sw.Elapsed())
}

func TestStopwatchRealClock(t *testing.T) {
	sw := NewStopwatch()
	sw.Start()
	time.Sleep(10 * time.Millisecond)
	require.GreaterOrEqual(t, sw.Elapsed(), 10*time.Millisecond)
}
