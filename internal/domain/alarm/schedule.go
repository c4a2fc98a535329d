package alarm

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Schedule is the validated alarm configuration: when to ring and for how long.
// It is immutable once built; accessors return copies.
type Schedule struct {
	// hour, minute and second form the wake-up time of day.
	hour   int
	minute int
	second int
	// weekdays holds the sorted, de-duplicated days the alarm rings on.
	weekdays []Weekday
	// fadeIn is the length of the brightness ramp.
	fadeIn time.Duration
	// hold is how long full brightness is kept after the ramp.
	hold time.Duration
}

// timeLayouts lists accepted time-of-day formats, most specific first.
//
//nolint:gochecknoglobals // Read-only lookup table.
var timeLayouts = []string{"15:04:05", "15:04"}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS" on a 24-hour clock.
func ParseTimeOfDay(value string) (hour, minute, second int, err error) {
	value = strings.TrimSpace(value)

	for _, layout := range timeLayouts {
		parsed, parseErr := time.Parse(layout, value)
		if parseErr == nil {
			return parsed.Hour(), parsed.Minute(), parsed.Second(), nil
		}
	}

	return 0, 0, 0, fmt.Errorf("%w: invalid time of day %q", ErrInvalidConfig, value)
}

// NewSchedule validates its arguments and builds a Schedule.
func NewSchedule(
	hour, minute, second int,
	weekdays []Weekday,
	fadeIn, hold time.Duration,
) (*Schedule, error) {
	days := slices.Clone(weekdays)
	slices.Sort(days)
	days = slices.Compact(days)

	s := &Schedule{
		hour:     hour,
		minute:   minute,
		second:   second,
		weekdays: days,
		fadeIn:   fadeIn,
		hold:     hold,
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks the time of day, the weekday set and the durations.
func (s *Schedule) Validate() error {
	if s.hour < 0 || s.hour > 23 || s.minute < 0 || s.minute > 59 || s.second < 0 || s.second > 59 {
		return fmt.Errorf("%w: time %02d:%02d:%02d is not a valid 24-hour clock value",
			ErrInvalidConfig, s.hour, s.minute, s.second)
	}

	if len(s.weekdays) == 0 {
		return fmt.Errorf("%w: at least one weekday is required", ErrInvalidConfig)
	}

	for _, d := range s.weekdays {
		if !d.Valid() {
			return fmt.Errorf("%w: weekday %d out of range", ErrInvalidConfig, int(d))
		}
	}

	if s.fadeIn <= 0 {
		return fmt.Errorf("%w: fade-in duration must be positive, got %s", ErrInvalidConfig, s.fadeIn)
	}

	if s.hold < 0 {
		return fmt.Errorf("%w: hold duration must not be negative, got %s", ErrInvalidConfig, s.hold)
	}

	return nil
}

// TimeOfDay returns the configured wake-up hour, minute and second.
func (s *Schedule) TimeOfDay() (hour, minute, second int) {
	return s.hour, s.minute, s.second
}

// Weekdays returns a copy of the configured days.
func (s *Schedule) Weekdays() []Weekday {
	return slices.Clone(s.weekdays)
}

// FadeIn returns the ramp duration.
func (s *Schedule) FadeIn() time.Duration {
	return s.fadeIn
}

// Hold returns the full-brightness duration after the ramp.
func (s *Schedule) Hold() time.Duration {
	return s.hold
}

// String renders the schedule for logs.
func (s *Schedule) String() string {
	names := make([]string, 0, len(s.weekdays))
	for _, d := range s.weekdays {
		names = append(names, d.String())
	}

	return fmt.Sprintf("%02d:%02d:%02d on %s, fade in %s, hold %s",
		s.hour, s.minute, s.second, strings.Join(names, ","), s.fadeIn, s.hold)
}
