package fade

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/oshokin/sunrise-alarm/internal/clock"
	"github.com/oshokin/sunrise-alarm/internal/domain/alarm"
	"github.com/oshokin/sunrise-alarm/internal/logger"
	"github.com/oshokin/sunrise-alarm/internal/strip"
)

// DefaultStepsPerSecond is the ramp resolution used when none is configured.
const DefaultStepsPerSecond = 24

// State is the progress of one ring cycle. It lives only for a single Run call.
type State struct {
	// Brightness is the last level written, in [0,1].
	Brightness float64
	// Steps is the number of ramp steps executed so far.
	Steps int
	// Start is when the ramp began.
	Start time.Time
}

// Runner executes ring cycles against a strip.
type Runner struct {
	// strip receives every brightness change.
	strip strip.Strip
	// clock provides time and sleeps.
	clock clock.Clock
	// stepsPerSecond sets the ramp resolution.
	stepsPerSecond int
}

// NewRunner creates a Runner. Non-positive stepsPerSecond falls back to DefaultStepsPerSecond.
func NewRunner(s strip.Strip, c clock.Clock, stepsPerSecond int) *Runner {
	if stepsPerSecond <= 0 {
		stepsPerSecond = DefaultStepsPerSecond
	}

	return &Runner{
		strip:          s,
		clock:          c,
		stepsPerSecond: stepsPerSecond,
	}
}

// Plan returns the number of ramp steps and the sleep between them for fadeIn.
func (r *Runner) Plan(fadeIn time.Duration) (steps int, interval time.Duration) {
	steps = max(int(math.Round(fadeIn.Seconds()*float64(r.stepsPerSecond))), 1)

	return steps, fadeIn / time.Duration(steps)
}

// Run ramps brightness up over fadeIn, holds full brightness for hold and
// switches the strip off. It blocks for the whole cycle.
//
// The ramp ends on wall-clock time rather than on the step count, so slow
// steps never shorten the fade; brightness at step i is i/steps, capped at 1.
func (r *Runner) Run(ctx context.Context, fadeIn, hold time.Duration) error {
	if fadeIn <= 0 {
		return fmt.Errorf("%w: fade-in duration must be positive, got %s", alarm.ErrInvalidConfig, fadeIn)
	}

	totalSteps, interval := r.Plan(fadeIn)
	state := &State{Start: r.clock.Now()}
	deadline := state.Start.Add(fadeIn)

	logger.InfoKV(ctx, "Starting fade in",
		"start", state.Start.Format(time.RFC3339),
		"fade_in", fadeIn,
		"steps", totalSteps,
		"step_interval", interval,
		"step_size", 1/float64(totalSteps),
	)

	if err := r.set(state, 0); err != nil {
		return err
	}

	for r.clock.Now().Before(deadline) {
		state.Steps++

		if err := r.set(state, min(float64(state.Steps)/float64(totalSteps), 1)); err != nil {
			return err
		}

		logger.DebugKV(ctx, "Fade step", "step", state.Steps, "brightness", state.Brightness)

		if err := r.clock.Sleep(ctx, interval); err != nil {
			return fmt.Errorf("fade interrupted: %w", err)
		}
	}

	if state.Brightness < 1 {
		if err := r.set(state, 1); err != nil {
			return err
		}
	}

	logger.InfoKV(ctx, "Fade in done, holding full brightness",
		"steps", state.Steps,
		"elapsed", r.clock.Now().Sub(state.Start),
		"hold", hold,
	)

	if err := r.clock.Sleep(ctx, hold); err != nil {
		return fmt.Errorf("hold interrupted: %w", err)
	}

	if err := r.set(state, 0); err != nil {
		return err
	}

	logger.Info(ctx, "Ring cycle finished")

	return nil
}

// set writes level to the strip and records it in state.
func (r *Runner) set(state *State, level float64) error {
	if err := r.strip.SetBrightness(level); err != nil {
		if errors.Is(err, alarm.ErrAdapter) {
			return fmt.Errorf("set brightness %.4f: %w", level, err)
		}

		return fmt.Errorf("set brightness %.4f: %w: %w", level, alarm.ErrAdapter, err)
	}

	state.Brightness = level

	return nil
}
