//go:build ws281x

package strip

import (
	"fmt"
	"math"
	"slices"

	ws2811 "github.com/rpi-ws281x/rpi-ws281x-go"

	"github.com/oshokin/sunrise-alarm/internal/domain/alarm"
)

// channel is the only PWM channel the strip is attached to.
const channel = 0

// maxBrightness is the driver's full-scale brightness.
const maxBrightness = 255

// stripTypes maps channel orders to driver strip types.
//
//nolint:gochecknoglobals // Read-only lookup table.
var stripTypes = map[Order]int{
	OrderRGB: ws2811.WS2811StripRGB,
	OrderRBG: ws2811.WS2811StripRBG,
	OrderGRB: ws2811.WS2811StripGRB,
	OrderGBR: ws2811.WS2811StripGBR,
	OrderBRG: ws2811.WS2811StripBRG,
	OrderBGR: ws2811.WS2811StripBGR,
}

// ws281x drives a WS281x strip through the rpi_ws281x library.
type ws281x struct {
	// dev is the initialized driver.
	dev *ws2811.WS2811
}

// Open initializes the hardware strip. The process usually needs root to access /dev/mem.
//
//nolint:ireturn,nolintlint // The concrete driver depends on the build tag.
func Open(opts Options) (Strip, error) {
	stripType, ok := stripTypes[opts.Order]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported LED order %q", alarm.ErrInvalidConfig, opts.Order)
	}

	options := ws2811.DefaultOptions
	options.Channels = slices.Clone(options.Channels)
	options.Channels[channel].GpioPin = opts.GPIOPin
	options.Channels[channel].LedCount = opts.LEDCount
	options.Channels[channel].Brightness = 0
	options.Channels[channel].StripeType = stripType

	dev, err := ws2811.MakeWS2811(&options)
	if err != nil {
		return nil, fmt.Errorf("%w: create driver: %w", alarm.ErrAdapter, err)
	}

	if err = dev.Init(); err != nil {
		return nil, fmt.Errorf("%w: init driver: %w", alarm.ErrAdapter, err)
	}

	return &ws281x{dev: dev}, nil
}

// SetBrightness scales level to the driver range and renders.
func (s *ws281x) SetBrightness(level float64) error {
	if err := checkLevel(level); err != nil {
		return err
	}

	s.dev.SetBrightness(channel, int(math.Round(level*maxBrightness)))

	return s.render()
}

// Fill writes c into every pixel and renders.
func (s *ws281x) Fill(c alarm.Color) error {
	leds := s.dev.Leds(channel)
	packed := pack(c)

	for i := range leds {
		leds[i] = packed
	}

	return s.render()
}

// Close releases the DMA and PWM resources.
func (s *ws281x) Close() error {
	s.dev.Fini()

	return nil
}

func (s *ws281x) render() error {
	if err := s.dev.Render(); err != nil {
		return fmt.Errorf("%w: render: %w", alarm.ErrAdapter, err)
	}

	return nil
}
