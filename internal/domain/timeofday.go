package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is an optional wall-clock time. The zero value means no time was given.
type TimeOfDay struct {
	Hour   int
	Minute int
	Valid  bool
}

// NewTimeOfDay returns a valid TimeOfDay.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute, Valid: true}
}

// ClockOf returns the wall-clock time of t, truncated to the minute.
func ClockOf(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute())
}

// ParseTimeOfDay accepts "HH:MM" (storage form) or "HHmm" (typed input, e.g. 1240).
// An empty string yields the zero TimeOfDay.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if s == "" {
		return TimeOfDay{}, nil
	}
	for _, layout := range []string{"15:04", "1504"} {
		if t, err := time.Parse(layout, s); err == nil {
			return ClockOf(t), nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("time %q must be HH:MM or HHmm (e.g. 1200)", s)
}

// String renders "HH:MM", or "" when no time is set.
func (t TimeOfDay) String() string {
	if !t.Valid {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// After reports whether t is strictly later than o. An unset time is never after anything.
func (t TimeOfDay) After(o TimeOfDay) bool {
	if !t.Valid || !o.Valid {
		return false
	}
	return t.Hour*60+t.Minute > o.Hour*60+o.Minute
}
