package platform

import "time"

// WallClock measures real elapsed time between calls. The first call has no
// previous frame and reports one tick at the target rate.
type WallClock struct {
	now      func() time.Time
	last     time.Time
	fallback float64
	max      float64
}

// NewWallClock returns a clock for a loop running at tps ticks per second.
// Deltas longer than maxDelta seconds are clamped; 0 disables clamping.
func NewWallClock(tps int, maxDelta float64) *WallClock {
	fallback := 1.0 / 60.0
	if tps > 0 {
		fallback = 1.0 / float64(tps)
	}
	return &WallClock{now: time.Now, fallback: fallback, max: maxDelta}
}

func (c *WallClock) FrameDelta() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return c.fallback
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		dt = 0
	}
	if c.max > 0 && dt > c.max {
		dt = c.max
	}
	return dt
}
