package alarm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oshokin/sunrise-alarm/internal/clock"
	domain "github.com/oshokin/sunrise-alarm/internal/domain/alarm"
	"github.com/oshokin/sunrise-alarm/internal/logger"
	"github.com/oshokin/sunrise-alarm/internal/strip"
)

// Fader runs one ring cycle.
type Fader interface {
	Run(ctx context.Context, fadeIn, hold time.Duration) error
}

// Resolver computes the next ring instant strictly after now.
type Resolver interface {
	NextOccurrence(now time.Time) (time.Time, error)
}

// Loop sequences ring cycles. Only one cycle runs at a time and the next
// occurrence is resolved only after the previous cycle has finished.
type Loop struct {
	// schedule holds the ring durations.
	schedule *domain.Schedule
	// resolver decides when to ring; the schedule itself unless overridden.
	resolver Resolver
	// fader runs the ramp and hold.
	fader Fader
	// strip is switched off after every cycle.
	strip strip.Strip
	// clock provides time and sleeps.
	clock clock.Clock
	// cycles limits the number of ring cycles; 0 means forever.
	cycles int
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithCycles stops the loop after n ring cycles. Zero or negative means forever.
func WithCycles(n int) LoopOption {
	return func(l *Loop) {
		if n > 0 {
			l.cycles = n
		}
	}
}

// WithResolver replaces the schedule's own recurrence computation.
func WithResolver(r Resolver) LoopOption {
	return func(l *Loop) {
		if r != nil {
			l.resolver = r
		}
	}
}

// NewLoop creates a Loop.
func NewLoop(
	schedule *domain.Schedule,
	fader Fader,
	s strip.Strip,
	c clock.Clock,
	opts ...LoopOption,
) *Loop {
	l := &Loop{
		schedule: schedule,
		resolver: schedule,
		fader:    fader,
		strip:    s,
		clock:    c,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Run rings the alarm until ctx is cancelled or the cycle limit is reached.
// Cancellation returns nil and leaves the strip in its last commanded state.
func (l *Loop) Run(ctx context.Context) error {
	logger.InfoKV(ctx, "Alarm loop started", "schedule", l.schedule.String())

	for cycle := 1; l.cycles == 0 || cycle <= l.cycles; cycle++ {
		err := l.ring(logger.WithKV(ctx, "cycle", cycle))

		switch {
		case err == nil:
		case ctx.Err() != nil && errors.Is(err, ctx.Err()):
			logger.Info(ctx, "Context canceled, exiting")

			return nil
		default:
			return err
		}
	}

	logger.InfoKV(ctx, "Alarm loop finished", "cycles", l.cycles)

	return nil
}

// ring waits for the next occurrence and runs one cycle.
func (l *Loop) ring(ctx context.Context) error {
	now := l.clock.Now()

	next, err := l.resolver.NextOccurrence(now)
	if err != nil {
		return fmt.Errorf("resolve next occurrence: %w", err)
	}

	delay := next.Sub(now)
	if delay < 0 {
		return fmt.Errorf("%w: %s is %s before %s", domain.ErrNegativeDelay,
			next.Format(time.RFC3339), -delay, now.Format(time.RFC3339))
	}

	logger.InfoKV(ctx, "Next alarm to ring", "at", next.Format(time.RFC3339), "in", delay)

	if err = l.clock.Sleep(ctx, delay); err != nil {
		return fmt.Errorf("wait for alarm: %w", err)
	}

	if err = l.fader.Run(ctx, l.schedule.FadeIn(), l.schedule.Hold()); err != nil {
		return fmt.Errorf("ring alarm: %w", err)
	}

	if err = l.strip.SetBrightness(0); err != nil {
		return fmt.Errorf("%w: turn strip off: %w", domain.ErrAdapter, err)
	}

	return nil
}
