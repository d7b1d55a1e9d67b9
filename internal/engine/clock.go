package engine

import "time"

// clock converts wall-clock progress into whole fixed-duration simulation
// steps, carrying the remainder between iterations as lag.
type clock struct {
	previous time.Time
	lag      time.Duration
	frame    time.Duration
	maxFrame time.Duration
}

func newClock(frame, maxFrame time.Duration, now time.Time) *clock {
	return &clock{previous: now, frame: frame, maxFrame: maxFrame}
}

// tick consumes the time elapsed since the previous call and returns how
// many fixed steps to simulate. Elapsed time strictly greater than maxFrame
// is discarded so a long stall cannot trigger an unbounded catch-up burst.
// After the call, lag is always less than one frame duration; an elapsed
// time that is an exact multiple of it leaves lag at zero.
func (c *clock) tick(now time.Time) int {
	elapsed := now.Sub(c.previous)
	c.previous = now

	if elapsed > c.maxFrame {
		elapsed = c.maxFrame
	}
	c.lag += elapsed

	steps := int(c.lag / c.frame)
	c.lag -= time.Duration(steps) * c.frame
	return steps
}
