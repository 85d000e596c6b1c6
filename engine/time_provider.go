package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies wall-clock readings to the frame clock
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock measures elapsed seconds between frames and freezes while paused
type FrameClock struct {
	mu       sync.Mutex
	provider TimeProvider
	last     time.Time
	paused   bool
}

// NewFrameClock starts a clock at the provider's current time
func NewFrameClock(provider TimeProvider) *FrameClock {
	return &FrameClock{provider: provider, last: provider.Now()}
}

// Delta returns seconds since the previous call, zero while paused
func (c *FrameClock) Delta() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.provider.Now()
	if c.paused {
		c.last = now
		return 0
	}
	d := now.Sub(c.last).Seconds()
	c.last = now
	if d < 0 {
		return 0
	}
	return d
}

// Pause stops time accumulation until Resume
func (c *FrameClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

// Resume restarts accumulation from now, discarding the paused span
func (c *FrameClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = false
	c.last = c.provider.Now()
}

// IsPaused reports pause state
func (c *FrameClock) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}
