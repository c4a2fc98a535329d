package clock

import (
	"context"
	"time"
)

// Clock reads the current time and suspends the caller.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time
	// Sleep blocks for d or until ctx is done, whichever comes first.
	// It returns ctx.Err() when interrupted.
	Sleep(ctx context.Context, d time.Duration) error
}

// Wall is the real wall clock.
type Wall struct{}

// New returns the real wall clock.
func New() Wall {
	return Wall{}
}

// Now returns time.Now().
func (Wall) Now() time.Time {
	return time.Now()
}

// Sleep waits on a timer so the wait can be cut short by context cancellation.
// The duration is fixed when the timer starts; later wall-clock adjustments
// do not shorten or extend it.
func (Wall) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
