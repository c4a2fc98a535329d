//go:build !ws281x

package strip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestOpen_WithoutHardware fails cleanly in builds lacking the driver.
func TestOpen_WithoutHardware(t *testing.T) {
	t.Parallel()

	s, err := Open(Options{LEDCount: 1, GPIOPin: DefaultGPIOPin, Order: DefaultOrder})
	require.ErrorIs(t, err, ErrHardwareUnavailable)
	require.Nil(t, s)
}
