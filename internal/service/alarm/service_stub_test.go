//go:build !ws281x

package alarm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/sunrise-alarm/internal/clock"
	"github.com/oshokin/sunrise-alarm/internal/strip"
)

// TestRun_NoHardwareDriver reports the missing driver instead of running blind.
func TestRun_NoHardwareDriver(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{
		ConfigPath:        writeConfig(t, `{time: "07:00", days: [monday], fade_in_minutes: 1}`),
		Clock:             clock.NewFake(sundayNight()),
		SkipInstanceCheck: true,
	})
	require.ErrorIs(t, err, strip.ErrHardwareUnavailable)
}
