package clock

import (
	"context"
	"sync"
	"time"
)

// Fake is a manually driven clock. Sleep advances the fake time instantly,
// so code under test runs at full speed while observing realistic timestamps.
type Fake struct {
	// now is the current fake instant.
	now time.Time
	// sleeps records every requested sleep duration in order.
	sleeps []time.Duration
	// onSleep is invoked after each sleep with the new current time.
	onSleep func(now time.Time)
	// mu protects the fields above.
	mu sync.Mutex
}

// NewFake creates a fake clock starting at the given instant.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the current fake instant.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.now
}

// Sleep records d and moves the clock forward by it.
// A cancelled context is honoured before any time passes.
func (f *Fake) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()

	f.sleeps = append(f.sleeps, d)
	if d > 0 {
		f.now = f.now.Add(d)
	}

	now, hook := f.now, f.onSleep

	f.mu.Unlock()

	if hook != nil {
		hook(now)
	}

	return ctx.Err()
}

// Advance moves the clock forward without recording a sleep.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(d)
}

// Sleeps returns a copy of every recorded sleep duration.
func (f *Fake) Sleeps() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]time.Duration, len(f.sleeps))
	copy(result, f.sleeps)

	return result
}

// OnSleep registers a hook called after each Sleep. Tests use it to cancel
// a context or to simulate slow steps via Advance.
func (f *Fake) OnSleep(hook func(now time.Time)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.onSleep = hook
}
