package strip

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/oshokin/sunrise-alarm/internal/domain/alarm"
	"github.com/oshokin/sunrise-alarm/internal/logger"
)

// Strip sets the brightness and color of every pixel at once.
type Strip interface {
	// SetBrightness applies a global brightness in [0,1] immediately.
	SetBrightness(level float64) error
	// Fill sets every pixel to c.
	Fill(c alarm.Color) error
	// Close releases the device.
	Close() error
}

// Order is the color channel order of the physical strip.
type Order string

// Supported channel orders.
const (
	OrderRGB Order = "RGB"
	OrderRBG Order = "RBG"
	OrderGRB Order = "GRB"
	OrderGBR Order = "GBR"
	OrderBRG Order = "BRG"
	OrderBGR Order = "BGR"
)

const (
	// DefaultLEDCount is the number of pixels on the reference strip.
	DefaultLEDCount = 40
	// DefaultGPIOPin is the PWM-capable pin the strip data line is wired to.
	DefaultGPIOPin = 18
	// DefaultOrder is the channel order of the reference strip.
	DefaultOrder = OrderRGB
)

// ErrHardwareUnavailable is returned when the binary was built without the LED driver.
var ErrHardwareUnavailable = errors.New("LED hardware support not compiled in (build with -tags ws281x)")

// Options describes the physical strip.
type Options struct {
	// LEDCount is the number of pixels.
	LEDCount int
	// GPIOPin is the BCM pin number of the data line.
	GPIOPin int
	// Order is the channel order expected by the pixels.
	Order Order
}

// ParseOrder validates a case-insensitive channel order name.
func ParseOrder(value string) (Order, error) {
	order := Order(strings.ToUpper(strings.TrimSpace(value)))

	switch order {
	case OrderRGB, OrderRBG, OrderGRB, OrderGBR, OrderBRG, OrderBGR:
		return order, nil
	default:
		return "", fmt.Errorf("%w: unknown LED order %q", alarm.ErrInvalidConfig, value)
	}
}

// Initialize fills the strip with c and leaves it dark, ready for a fade.
func Initialize(ctx context.Context, s Strip, c alarm.Color) error {
	if err := s.Fill(c); err != nil {
		return fmt.Errorf("fill strip: %w", err)
	}

	if err := s.SetBrightness(0); err != nil {
		return fmt.Errorf("turn strip off: %w", err)
	}

	logger.DebugKV(ctx, "Strip initialized", "color", c.String())

	return nil
}

// checkLevel rejects brightness values outside [0,1].
func checkLevel(level float64) error {
	if math.IsNaN(level) || level < 0 || level > 1 {
		return fmt.Errorf("%w: brightness %v out of range [0,1]", alarm.ErrAdapter, level)
	}

	return nil
}

// pack converts a Color into the 0x00RRGGBB word used by the pixel buffer.
func pack(c alarm.Color) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
