package strip

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oshokin/sunrise-alarm/internal/domain/alarm"
)

// TestParseOrder accepts known orders in any case and rejects the rest.
func TestParseOrder(t *testing.T) {
	t.Parallel()

	order, err := ParseOrder(" grb ")
	require.NoError(t, err)
	require.Equal(t, OrderGRB, order)

	_, err = ParseOrder("RGBW")
	require.ErrorIs(t, err, alarm.ErrInvalidConfig)
}

// TestInitialize fills first and then switches the strip off.
func TestInitialize(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	require.NoError(t, Initialize(context.Background(), r, alarm.DefaultColor))
	require.Equal(t, []alarm.Color{alarm.DefaultColor}, r.Fills())
	require.Equal(t, []float64{0}, r.Levels())
}

// TestRecorder_RejectsOutOfRange reports adapter errors for bad levels.
func TestRecorder_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	require.Equal(t, -1.0, r.Last())

	for _, bad := range []float64{-0.1, 1.01, math.NaN()} {
		require.ErrorIs(t, r.SetBrightness(bad), alarm.ErrAdapter)
	}

	require.Empty(t, r.Levels())
	require.NoError(t, r.SetBrightness(1))
	require.Equal(t, 1.0, r.Last())
	require.NoError(t, r.Close())
	require.True(t, r.Closed())
}

// TestSimulated keeps the last commanded state.
func TestSimulated(t *testing.T) {
	t.Parallel()

	s := NewSimulated(zap.NewNop().Sugar(), Options{LEDCount: DefaultLEDCount, GPIOPin: DefaultGPIOPin, Order: DefaultOrder})
	require.NoError(t, s.Fill(alarm.DefaultColor))
	require.NoError(t, s.SetBrightness(0.25))
	require.Equal(t, 0.25, s.Brightness())
	require.ErrorIs(t, s.SetBrightness(2), alarm.ErrAdapter)
	require.NoError(t, s.Close())
}

// TestPack lays out channels as 0x00RRGGBB.
func TestPack(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint32(0x0AFF6E), pack(alarm.DefaultColor))
}
