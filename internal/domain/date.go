package domain

import (
	"fmt"
	"time"
)

// DateLayout is the ISO 8601 calendar date layout used everywhere a Date is
// parsed or formatted.
const DateLayout = "2006-01-02"

// Date is a civil calendar date with no time zone. It is comparable with ==.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the normalized date for the given components, so
// NewDate(2021, 2, 30) is 2021-03-02.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("date %q must be YYYY-MM-DD: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// Time returns midnight UTC on d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// AddMonths returns d shifted by n months. When the target month is shorter
// than d.Day the result is the last day of the target month.
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.Year, d.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	y, m, _ := first.Date()
	return Date{Year: y, Month: m, Day: min(d.Day, DaysIn(y, m))}
}

// ISOWeekday numbers weekdays Monday=1 through Sunday=7.
func (d Date) ISOWeekday() int {
	wd := d.Time().Weekday()
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// LengthOfMonth is the number of days in d's month.
func (d Date) LengthOfMonth() int {
	return DaysIn(d.Year, d.Month)
}

const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the number of days from d to o (negative if o is earlier).
func (d Date) DaysBetween(o Date) int {
	return int((o.Time().Unix() - d.Time().Unix()) / secondsPerDay)
}

// DaysIn returns the length of the given month, accounting for leap years.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
