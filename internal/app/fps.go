package app

import "time"

// fpsCounter averages the frame rate over windows of at least one second.
type fpsCounter struct {
	frames int
	since  time.Time
}

// tick records a frame. It reports the rate once per window.
func (c *fpsCounter) tick(now time.Time) (float64, bool) {
	if c.since.IsZero() {
		c.since = now
		return 0, false
	}
	c.frames++
	elapsed := now.Sub(c.since)
	if elapsed < time.Second {
		return 0, false
	}
	fps := float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.since = now
	return fps, true
}
