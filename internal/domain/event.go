package domain

import "slices"

// Event is a dated entry owned by a contact: either a FixedEvent or a
// RecurringEvent. Both variants are comparable, so == on two Events compares
// variant and contents.
type Event interface {
	Summary() string
	TimeOfDay() TimeOfDay
	event()
}

// FixedEvent happens on a single stored date.
type FixedEvent struct {
	Date        Date
	Time        TimeOfDay
	Description string
}

// RecurringEvent has no stored occurrence; its date is derived from Rule
// each time it is asked for.
type RecurringEvent struct {
	Rule        Rule
	Time        TimeOfDay
	Description string
}

func (e FixedEvent) Summary() string      { return e.Description }
func (e FixedEvent) TimeOfDay() TimeOfDay { return e.Time }
func (FixedEvent) event()                 {}

func (e RecurringEvent) Summary() string      { return e.Description }
func (e RecurringEvent) TimeOfDay() TimeOfDay { return e.Time }
func (RecurringEvent) event()                 {}

// NewEvent builds the variant matching kind: RecurNone gives a FixedEvent.
func NewEvent(date Date, t TimeOfDay, description string, kind RecurrenceKind) Event {
	if kind == RecurNone || kind == "" {
		return FixedEvent{Date: date, Time: t, Description: description}
	}
	return RecurringEvent{Rule: NewRule(date, kind), Time: t, Description: description}
}

// EffectiveDate is the date e falls on as seen from now.
func EffectiveDate(e Event, now Date) Date {
	switch v := e.(type) {
	case FixedEvent:
		return v.Date
	case RecurringEvent:
		return Resolve(v.Rule, now)
	default:
		panic("domain: unknown event variant")
	}
}

// SeedDate is the date that gets persisted: the fixed date, or the rule's seed.
func SeedDate(e Event) Date {
	switch v := e.(type) {
	case FixedEvent:
		return v.Date
	case RecurringEvent:
		return v.Rule.Seed
	default:
		panic("domain: unknown event variant")
	}
}

// RecurrenceOf returns RecurNone for fixed events.
func RecurrenceOf(e Event) RecurrenceKind {
	if v, ok := e.(RecurringEvent); ok {
		return v.Rule.Kind
	}
	return RecurNone
}

// SortByEffectiveDate returns a new slice ordered by effective date, latest
// first. Events on the same date keep their relative order.
func SortByEffectiveDate(events []Event, now Date) []Event {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b Event) int {
		return EffectiveDate(b, now).Compare(EffectiveDate(a, now))
	})
	return sorted
}

// WithEvent returns a new sorted slice containing events plus e.
func WithEvent(events []Event, e Event, now Date) []Event {
	next := make([]Event, 0, len(events)+1)
	next = append(next, events...)
	next = append(next, e)
	return SortByEffectiveDate(next, now)
}

// WithoutEvent returns a copy of events with the element at idx removed.
func WithoutEvent(events []Event, idx int) []Event {
	next := slices.Clone(events)
	return slices.Delete(next, idx, idx+1)
}
