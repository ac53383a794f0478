package domain

import (
	"fmt"
	"time"
)

const CalendarDateLayout = "2006-01-02"

// CalendarDate is a day on the calendar with no time of day and no zone.
type CalendarDate struct {
	year  int
	month time.Month
	day   int
}

func NewCalendarDate(year int, month time.Month, day int) (CalendarDate, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return CalendarDate{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidCalendarDate, year, month, day)
	}

	return CalendarDate{year: year, month: month, day: day}, nil
}

func MustCalendarDate(year int, month time.Month, day int) CalendarDate {
	d, err := NewCalendarDate(year, month, day)
	if err != nil {
		panic(err)
	}

	return d
}

func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(CalendarDateLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %q: %v", ErrInvalidCalendarDate, s, err)
	}

	return CalendarDate{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

// ParseOptionalCalendarDate returns nil for an empty string.
func ParseOptionalCalendarDate(s string) (*CalendarDate, error) {
	if s == "" {
		return nil, nil //nolint:nilnil
	}

	d, err := ParseCalendarDate(s)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) CalendarDate {
	return CalendarDate{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d CalendarDate) Year() int {
	return d.year
}

func (d CalendarDate) Month() time.Month {
	return d.month
}

func (d CalendarDate) Day() int {
	return d.day
}

func (d CalendarDate) IsZero() bool {
	return d.year == 0 && d.month == 0 && d.day == 0
}

func (d CalendarDate) Compare(other CalendarDate) int {
	switch {
	case d.year != other.year:
		return compareInt(d.year, other.year)
	case d.month != other.month:
		return compareInt(int(d.month), int(other.month))
	default:
		return compareInt(d.day, other.day)
	}
}

func (d CalendarDate) Before(other CalendarDate) bool {
	return d.Compare(other) < 0
}

func (d CalendarDate) After(other CalendarDate) bool {
	return d.Compare(other) > 0
}

func (d CalendarDate) Equals(other CalendarDate) bool {
	return d.Compare(other) == 0
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
