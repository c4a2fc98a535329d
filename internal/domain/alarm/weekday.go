package alarm

import (
	"fmt"
	"strings"

	"github.com/teambition/rrule-go"
)

// Weekday numbers days Monday=0 through Sunday=6.
type Weekday int

// Days of the week.
const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// weekdayNames maps lowercase English names to weekdays.
//
//nolint:gochecknoglobals // Read-only lookup table.
var weekdayNames = map[string]Weekday{
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
}

// rruleWeekdays shares the Monday=0 numbering with Weekday.
//
//nolint:gochecknoglobals // Read-only lookup table.
var rruleWeekdays = [...]rrule.Weekday{
	rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU,
}

// ParseWeekday converts a case-insensitive English day name.
func ParseWeekday(name string) (Weekday, error) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown weekday %q", ErrInvalidConfig, name)
	}

	return day, nil
}

// Valid reports whether the weekday is within Monday..Sunday.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// String returns the capitalised English day name.
func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}

	return [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}[d]
}

func (d Weekday) rrule() rrule.Weekday {
	return rruleWeekdays[d]
}
