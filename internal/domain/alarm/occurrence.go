package alarm

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// searchWindowDays bounds the recurrence search. Seven days always contain
// every weekday; the extra day covers "now" being past today's alarm time.
const searchWindowDays = 8

// NextOccurrence returns the earliest instant strictly after now that falls
// on a configured weekday at the configured time of day, in now's location.
// When now is exactly the alarm instant, the following occurrence is returned.
func (s *Schedule) NextOccurrence(now time.Time) (time.Time, error) {
	if len(s.weekdays) == 0 {
		return time.Time{}, fmt.Errorf("%w: at least one weekday is required", ErrInvalidConfig)
	}

	byWeekday := make([]rrule.Weekday, 0, len(s.weekdays))
	for _, d := range s.weekdays {
		byWeekday = append(byWeekday, d.rrule())
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   today,
		Until:     today.AddDate(0, 0, searchWindowDays),
		Byweekday: byWeekday,
		Byhour:    []int{s.hour},
		Byminute:  []int{s.minute},
		Bysecond:  []int{s.second},
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: build recurrence rule: %w", ErrInvalidConfig, err)
	}

	next := rule.After(now, false)
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("%w after %s", ErrNoOccurrence, now.Format(time.RFC3339))
	}

	return next, nil
}
