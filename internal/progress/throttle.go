package progress

import "time"

// Default throttle policy: re-render only when the value moved by at least
// one point or enough time has passed since the last render.
const (
	DefaultMinDelta    = 1.0
	DefaultMinInterval = 200 * time.Millisecond
)

// Throttler decides whether a consumer should re-render a determinate
// progress value. Throttling is a consumer-side concern; strategies report
// every event through the Sink unconditionally.
type Throttler struct {
	minDelta    float64
	minInterval time.Duration

	seen   bool
	last   float64
	lastAt time.Time
}

// NewThrottler returns a Throttler with the default policy.
func NewThrottler() *Throttler {
	return &Throttler{minDelta: DefaultMinDelta, minInterval: DefaultMinInterval}
}

// ShouldRender reports whether percent is worth rendering at time now.
// The first value, any value >= 100, a move of at least minDelta, or an
// elapsed interval of at least minInterval all pass.
func (t *Throttler) ShouldRender(percent float64, now time.Time) bool {
	if !t.seen || percent >= 100 ||
		percent-t.last >= t.minDelta ||
		now.Sub(t.lastAt) >= t.minInterval {
		t.seen = true
		t.last = percent
		t.lastAt = now
		return true
	}
	return false
}

// Reset clears the tracking state, e.g. when a fallback attempt restarts the
// progress sequence from zero.
func (t *Throttler) Reset() {
	t.seen = false
	t.last = 0
	t.lastAt = time.Time{}
}
