package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecurringEvent_EqualityIgnoresResolvedDate(t *testing.T) {
	a := RecurringEvent{Rule: NewRule(NewDate(2021, time.March, 14), RecurWeekly), Description: "Sample recurring event"}
	b := RecurringEvent{Rule: NewRule(NewDate(2021, time.March, 14), RecurWeekly), Description: "Sample recurring event"}

	assert.NotEqual(t, EffectiveDate(a, NewDate(2021, time.March, 15)), EffectiveDate(b, NewDate(2021, time.April, 1)))
	assert.True(t, a == b)

	var ea, eb Event = a, b
	assert.True(t, ea == eb)
	assert.False(t, ea == Event(FixedEvent{Date: a.Rule.Seed, Description: a.Description}))
}

func TestEffectiveDate(t *testing.T) {
	seed := NewDate(2021, time.March, 14)
	now := NewDate(2021, time.March, 15)

	fixed := FixedEvent{Date: seed, Description: "lunch"}
	assert.Equal(t, seed, EffectiveDate(fixed, now))
	assert.Equal(t, seed, SeedDate(fixed))
	assert.Equal(t, RecurNone, RecurrenceOf(fixed))

	weekly := RecurringEvent{Rule: NewRule(seed, RecurWeekly), Time: NewTimeOfDay(18, 30), Description: "climbing"}
	assert.Equal(t, NewDate(2021, time.March, 21), EffectiveDate(weekly, now))
	assert.Equal(t, seed, SeedDate(weekly))
	assert.Equal(t, RecurWeekly, RecurrenceOf(weekly))
	assert.Equal(t, NewTimeOfDay(18, 30), weekly.TimeOfDay())
}

func TestNewEvent_SelectsVariant(t *testing.T) {
	d := NewDate(2022, time.June, 1)
	assert.IsType(t, FixedEvent{}, NewEvent(d, TimeOfDay{}, "x", RecurNone))
	assert.IsType(t, RecurringEvent{}, NewEvent(d, TimeOfDay{}, "x", RecurMonthly))
}

func TestSortByEffectiveDate_DescendingAndStable(t *testing.T) {
	now := NewDate(2021, time.March, 15)
	first := FixedEvent{Date: NewDate(2021, time.March, 1), Description: "first"}
	second := FixedEvent{Date: NewDate(2021, time.March, 21), Description: "second"}
	sameAsSecond := RecurringEvent{Rule: NewRule(NewDate(2021, time.March, 14), RecurWeekly), Description: "weekly"}
	latest := FixedEvent{Date: NewDate(2021, time.May, 1), Description: "latest"}

	in := []Event{first, second, sameAsSecond, latest}
	got := SortByEffectiveDate(in, now)

	assert.Equal(t, []Event{latest, second, sameAsSecond, first}, got)
	assert.Equal(t, first, in[0], "input must not be reordered")
}

func TestWithEvent_ReturnsNewSortedSlice(t *testing.T) {
	now := NewDate(2021, time.March, 15)
	base := []Event{FixedEvent{Date: NewDate(2021, time.March, 10), Description: "a"}}
	added := FixedEvent{Date: NewDate(2021, time.March, 12), Description: "b"}

	got := WithEvent(base, added, now)
	assert.Len(t, base, 1)
	assert.Equal(t, []Event{added, base[0]}, got)

	assert.Equal(t, []Event{base[0]}, WithoutEvent(got, 0))
	assert.Len(t, got, 2)
}
