package alarm

import "fmt"

// Color is an RGB triple written to every pixel of the strip.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// DefaultColor is the warm sunrise tone used when none is configured.
//
//nolint:gochecknoglobals // Immutable default value.
var DefaultColor = Color{R: 10, G: 255, B: 110}

// ColorFromSlice builds a Color from a three-element list of 0..255 values.
func ColorFromSlice(values []int) (Color, error) {
	if len(values) != 3 {
		return Color{}, fmt.Errorf("%w: color needs 3 components, got %d", ErrInvalidConfig, len(values))
	}

	for _, v := range values {
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("%w: color component %d out of range", ErrInvalidConfig, v)
		}
	}

	return Color{R: uint8(values[0]), G: uint8(values[1]), B: uint8(values[2])}, nil
}

// String renders the color as (r, g, b).
func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}
