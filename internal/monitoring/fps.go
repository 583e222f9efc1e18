package monitoring

// FPSCounter averages the frame rate over a fixed interval of game time.
type FPSCounter struct {
	interval float64
	frames   int
	elapsed  float64
	fps      float64
}

// NewFPSCounter creates a counter that reports every interval seconds.
func NewFPSCounter(interval float64) *FPSCounter {
	if interval <= 0 {
		interval = 0.5
	}
	return &FPSCounter{interval: interval}
}

// Tick records one frame that took dt seconds. When the interval has elapsed
// it returns the average rate and true, then starts a new interval.
func (c *FPSCounter) Tick(dt float64) (float64, bool) {
	c.frames++
	c.elapsed += dt
	if c.elapsed <= c.interval {
		return c.fps, false
	}

	c.fps = float64(c.frames) / c.elapsed
	c.frames = 0
	c.elapsed = 0
	return c.fps, true
}

// FPS returns the most recently reported rate.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}
