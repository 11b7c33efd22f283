package domain

import (
	"fmt"
	"strings"
)

type RecurrenceKind string

const (
	RecurNone    RecurrenceKind = "NONE"
	RecurWeekly  RecurrenceKind = "WEEKLY"
	RecurMonthly RecurrenceKind = "MONTHLY"
)

// ParseRecurrenceKind accepts the stored names case-insensitively.
func ParseRecurrenceKind(s string) (RecurrenceKind, error) {
	switch k := RecurrenceKind(strings.ToUpper(strings.TrimSpace(s))); k {
	case RecurNone, RecurWeekly, RecurMonthly:
		return k, nil
	default:
		return "", fmt.Errorf("unknown recurrence kind %q (want none, weekly or monthly)", s)
	}
}

// Rule anchors a recurrence to a seed date. The seed fixes which weekday
// (weekly) or day of month (monthly) is canonical.
type Rule struct {
	Seed Date
	Kind RecurrenceKind
}

func NewRule(seed Date, kind RecurrenceKind) Rule {
	return Rule{Seed: seed, Kind: kind}
}

// Resolve returns the first occurrence of r on or after reference.
//
// Monthly rules whose seed day does not exist in a month land on that month's
// last day, so a day-31 seed still occurs once per month. Dates before the
// seed resolve the same way as dates after it.
func Resolve(r Rule, reference Date) Date {
	if reference == r.Seed {
		return r.Seed
	}
	switch r.Kind {
	case RecurMonthly:
		return resolveMonthly(r.Seed.Day, reference)
	case RecurWeekly:
		return resolveWeekly(r.Seed.ISOWeekday(), reference)
	default:
		return r.Seed
	}
}

func resolveMonthly(seedDay int, ref Date) Date {
	day := ref.Day
	switch {
	case day == seedDay:
		return ref
	case day < seedDay:
		if seedDay > ref.LengthOfMonth() {
			return ref.AddDays(ref.LengthOfMonth() - day)
		}
		return ref.AddDays(seedDay - day)
	default:
		// Replaces (ref + 1 month) - (day - seedDay), which agrees except
		// when ref + 1 month clamps and then lands before the seed day.
		next := Date{Year: ref.Year, Month: ref.Month, Day: 1}.AddMonths(1)
		next.Day = min(seedDay, next.LengthOfMonth())
		return next
	}
}

func resolveWeekly(seedDow int, ref Date) Date {
	day := ref.ISOWeekday()
	switch {
	case day == seedDow:
		return ref
	case day < seedDow:
		return ref.AddDays(seedDow - day)
	default:
		return ref.AddDays(7 - (day - seedDow))
	}
}
