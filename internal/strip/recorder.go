package strip

import (
	"slices"
	"sync"

	"github.com/oshokin/sunrise-alarm/internal/domain/alarm"
)

// Recorder is an in-memory Strip that keeps the full command history.
// Tests use it to assert on brightness sequences.
type Recorder struct {
	// levels holds every brightness written, in order.
	levels []float64
	// fills holds every fill color, in order.
	fills []alarm.Color
	// closed reports whether Close was called.
	closed bool
	// hook runs after each successful SetBrightness with the level written.
	hook func(level float64)
	// mu protects the fields above.
	mu sync.Mutex
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return new(Recorder)
}

// SetBrightness records level.
func (r *Recorder) SetBrightness(level float64) error {
	if err := checkLevel(level); err != nil {
		return err
	}

	r.mu.Lock()
	r.levels = append(r.levels, level)
	hook := r.hook
	r.mu.Unlock()

	if hook != nil {
		hook(level)
	}

	return nil
}

// Fill records c.
func (r *Recorder) Fill(c alarm.Color) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fills = append(r.fills, c)

	return nil
}

// Close marks the recorder closed.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true

	return nil
}

// OnBrightness registers a hook called after every recorded level.
func (r *Recorder) OnBrightness(hook func(level float64)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hook = hook
}

// Levels returns a copy of the brightness history.
func (r *Recorder) Levels() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.levels)
}

// Fills returns a copy of the fill history.
func (r *Recorder) Fills() []alarm.Color {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.fills)
}

// Last returns the most recent brightness, or -1 when none was written.
func (r *Recorder) Last() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.levels) == 0 {
		return -1
	}

	return r.levels[len(r.levels)-1]
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.closed
}
