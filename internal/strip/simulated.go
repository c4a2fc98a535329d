package strip

import (
	"sync"

	"go.uber.org/zap"

	"github.com/oshokin/sunrise-alarm/internal/domain/alarm"
)

// Simulated is a strip without hardware: it logs every command and remembers
// the last one. Used for dry runs on machines without a LED strip.
type Simulated struct {
	// log receives a line per command.
	log *zap.SugaredLogger
	// brightness is the last level written.
	brightness float64
	// color is the last fill color.
	color alarm.Color
	// mu protects brightness and color.
	mu sync.Mutex
}

// NewSimulated creates a log-only strip.
func NewSimulated(log *zap.SugaredLogger, opts Options) *Simulated {
	log.Infow("Using simulated LED strip", "led_count", opts.LEDCount, "gpio_pin", opts.GPIOPin, "order", opts.Order)

	return &Simulated{log: log}
}

// SetBrightness logs and stores level.
func (s *Simulated) SetBrightness(level float64) error {
	if err := checkLevel(level); err != nil {
		return err
	}

	s.mu.Lock()
	s.brightness = level
	s.mu.Unlock()

	s.log.Debugw("Simulated brightness", "level", level)

	return nil
}

// Fill logs and stores c.
func (s *Simulated) Fill(c alarm.Color) error {
	s.mu.Lock()
	s.color = c
	s.mu.Unlock()

	s.log.Debugw("Simulated fill", "color", c.String(), "packed", pack(c))

	return nil
}

// Brightness returns the last level written.
func (s *Simulated) Brightness() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.brightness
}

// Close is a no-op.
func (s *Simulated) Close() error {
	s.log.Debug("Simulated strip closed")

	return nil
}
