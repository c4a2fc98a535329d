package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestWallSleep_Cancelled verifies that a cancelled context interrupts the wait.
func TestWallSleep_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New().Sleep(ctx, time.Hour)
	require.ErrorIs(t, err, context.Canceled)
}

// TestWallSleep_ZeroDuration returns immediately without error.
func TestWallSleep_ZeroDuration(t *testing.T) {
	t.Parallel()

	require.NoError(t, New().Sleep(context.Background(), 0))
}

// TestFake_SleepAdvances checks that sleeps move fake time and are recorded.
func TestFake_SleepAdvances(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, time.January, 7, 23, 0, 0, 0, time.UTC)
	f := NewFake(start)

	require.NoError(t, f.Sleep(context.Background(), time.Minute))
	require.NoError(t, f.Sleep(context.Background(), time.Second))
	f.Advance(time.Hour)

	require.Equal(t, start.Add(time.Hour+time.Minute+time.Second), f.Now())
	require.Equal(t, []time.Duration{time.Minute, time.Second}, f.Sleeps())
}

// TestFake_OnSleepHook ensures the hook observes the post-sleep time.
func TestFake_OnSleepHook(t *testing.T) {
	t.Parallel()

	start := time.Unix(0, 0).UTC()
	f := NewFake(start)

	var seen time.Time

	f.OnSleep(func(now time.Time) {
		seen = now
	})

	require.NoError(t, f.Sleep(context.Background(), 5*time.Second))
	require.Equal(t, start.Add(5*time.Second), seen)
}
