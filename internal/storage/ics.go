package storage

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/friendex/internal/domain"
	ics "github.com/arran4/golang-ical"
)

const icsProductID = "-//friendex//friendex//EN"

var icsWeekdays = [...]string{"", "MO", "TU", "WE", "TH", "FR", "SA", "SU"}

// WriteICS renders every contact's birthday, meetings and special dates as a
// VCALENDAR. Recurring events carry an RRULE that expands to the same dates
// domain.Resolve produces.
func WriteICS(w io.Writer, contacts []*domain.Contact, now domain.Date) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)

	stamp := now.Time()
	for _, c := range contacts {
		bday := cal.AddEvent(fmt.Sprintf("%s-birthday@friendex", c.ID))
		bday.SetDtStampTime(stamp)
		bday.SetSummary(fmt.Sprintf("%s's Birthday", c.Name))
		bday.SetAllDayStartAt(c.Birthday.Time())
		bday.AddRrule(YearlyRRule(c.Birthday))

		addEvents(cal, c, domain.CategoryMeeting, stamp)
		addEvents(cal, c, domain.CategorySpecialDate, stamp)
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("writing ics calendar: %w", err)
	}
	return nil
}

func addEvents(cal *ics.Calendar, c *domain.Contact, cat domain.EventCategory, stamp time.Time) {
	for i, e := range c.Events(cat) {
		ve := cal.AddEvent(fmt.Sprintf("%s-%s-%d@friendex", c.ID, cat, i+1))
		ve.SetDtStampTime(stamp)
		ve.SetSummary(fmt.Sprintf("%s [%s]", e.Summary(), c.Name))
		ve.SetProperty(ics.ComponentPropertyCategories, strings.ToUpper(string(cat)))

		seed := domain.SeedDate(e)
		if t := e.TimeOfDay(); t.Valid {
			start := time.Date(seed.Year, seed.Month, seed.Day, t.Hour, t.Minute, 0, 0, time.UTC)
			// Floating local time: no zone designator.
			ve.SetProperty(ics.ComponentPropertyDtStart, start.Format("20060102T150405"))
		} else {
			ve.SetAllDayStartAt(seed.Time())
		}

		if r, ok := e.(domain.RecurringEvent); ok {
			ve.AddRrule(RRule(r.Rule))
		}
	}
}

// RRule returns the RFC 5545 recurrence rule equivalent to rule. Monthly
// seeds past day 28 pick the last existing day up to the seed day, which is
// the clamp domain.Resolve applies.
func RRule(rule domain.Rule) string {
	switch rule.Kind {
	case domain.RecurWeekly:
		return "FREQ=WEEKLY;BYDAY=" + icsWeekdays[rule.Seed.ISOWeekday()]
	case domain.RecurMonthly:
		if rule.Seed.Day <= 28 {
			return "FREQ=MONTHLY;BYMONTHDAY=" + strconv.Itoa(rule.Seed.Day)
		}
		return "FREQ=MONTHLY;BYMONTHDAY=" + dayRange(28, rule.Seed.Day) + ";BYSETPOS=-1"
	default:
		return ""
	}
}

// YearlyRRule repeats an anniversary; Feb 29 falls back to Feb 28 in common years.
func YearlyRRule(d domain.Date) string {
	if d.Month == time.February && d.Day == 29 {
		return "FREQ=YEARLY;BYMONTH=2;BYMONTHDAY=28,29;BYSETPOS=-1"
	}
	return fmt.Sprintf("FREQ=YEARLY;BYMONTH=%d;BYMONTHDAY=%d", int(d.Month), d.Day)
}

func dayRange(from, to int) string {
	parts := make([]string, 0, to-from+1)
	for d := from; d <= to; d++ {
		parts = append(parts, strconv.Itoa(d))
	}
	return strings.Join(parts, ",")
}
