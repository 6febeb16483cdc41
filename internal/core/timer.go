package core

import "time"

// FrameClock measures wall-clock time between frames and clamps each delta
// so a hitch never feeds the simulation one huge step.
type FrameClock struct {
	max  time.Duration
	last time.Time
	now  func() time.Time
}

// NewFrameClock constructs a clock whose deltas never exceed maxStep.
func NewFrameClock(maxStep time.Duration) *FrameClock {
	if maxStep <= 0 {
		maxStep = 50 * time.Millisecond
	}
	return &FrameClock{max: maxStep, now: time.Now}
}

// Tick returns the seconds elapsed since the previous Tick, clamped to the
// maximum step. The first call after construction or Reset returns zero.
func (c *FrameClock) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > c.max {
		delta = c.max
	}
	return delta.Seconds()
}

// Reset forgets the previous frame, e.g. after the host was paused.
func (c *FrameClock) Reset() { c.last = time.Time{} }

// MaxStep returns the clamp applied to every delta.
func (c *FrameClock) MaxStep() time.Duration { return c.max }

// TPSStep returns the fixed step for a ticks-per-second rate.
func TPSStep(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}
