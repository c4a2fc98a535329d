package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestParseTimeOfDay covers accepted layouts and rejected clock values.
func TestParseTimeOfDay(t *testing.T) {
	t.Parallel()

	h, m, s, err := ParseTimeOfDay("07:00")
	require.NoError(t, err)
	require.Equal(t, []int{7, 0, 0}, []int{h, m, s})

	h, m, s, err = ParseTimeOfDay(" 23:59:30 ")
	require.NoError(t, err)
	require.Equal(t, []int{23, 59, 30}, []int{h, m, s})

	for _, bad := range []string{"25:99", "24:00", "7am", "", "12:60"} {
		_, _, _, err = ParseTimeOfDay(bad)
		require.ErrorIs(t, err, ErrInvalidConfig, bad)
	}
}

// TestParseWeekday checks case-insensitive names and unknown values.
func TestParseWeekday(t *testing.T) {
	t.Parallel()

	d, err := ParseWeekday("Monday")
	require.NoError(t, err)
	require.Equal(t, Monday, d)

	d, err = ParseWeekday("SUNDAY")
	require.NoError(t, err)
	require.Equal(t, Sunday, d)
	require.Equal(t, "Sunday", d.String())

	_, err = ParseWeekday("funday")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

// TestNewSchedule_Validation rejects every invariant violation.
func TestNewSchedule_Validation(t *testing.T) {
	t.Parallel()

	days := []Weekday{Monday}

	_, err := NewSchedule(7, 0, 0, nil, time.Minute, 0)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewSchedule(24, 0, 0, days, time.Minute, 0)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewSchedule(7, 0, 0, []Weekday{7}, time.Minute, 0)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewSchedule(7, 0, 0, days, 0, 0)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewSchedule(7, 0, 0, days, time.Minute, -time.Second)
	require.ErrorIs(t, err, ErrInvalidConfig)

	s, err := NewSchedule(7, 0, 0, []Weekday{Wednesday, Monday, Wednesday}, 10*time.Minute, 5*time.Minute)
	require.NoError(t, err)
	require.Equal(t, []Weekday{Monday, Wednesday}, s.Weekdays())
	require.Equal(t, 10*time.Minute, s.FadeIn())
	require.Equal(t, 5*time.Minute, s.Hold())
}

// TestSchedule_WeekdaysIsCopy ensures callers cannot mutate the schedule.
func TestSchedule_WeekdaysIsCopy(t *testing.T) {
	t.Parallel()

	s, err := NewSchedule(7, 0, 0, []Weekday{Monday}, time.Minute, 0)
	require.NoError(t, err)

	days := s.Weekdays()
	days[0] = Friday

	require.Equal(t, []Weekday{Monday}, s.Weekdays())
}

// TestColorFromSlice validates component count and range.
func TestColorFromSlice(t *testing.T) {
	t.Parallel()

	c, err := ColorFromSlice([]int{10, 255, 110})
	require.NoError(t, err)
	require.Equal(t, DefaultColor, c)

	_, err = ColorFromSlice([]int{1, 2})
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = ColorFromSlice([]int{1, 2, 256})
	require.ErrorIs(t, err, ErrInvalidConfig)
}
