package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/friendex/internal/domain"
)

// FormatContactList renders one row per contact.
func FormatContactList(contacts []*domain.Contact, today domain.Date) string {
	rows := make([][]string, 0, len(contacts))
	for _, c := range contacts {
		next := c.NextBirthday(today)
		rows = append(rows, []string{
			TruncID(c.ID),
			Bold(c.Name),
			c.Birthday.String(),
			RelativeDaysStyled(next, today),
			strconv.Itoa(len(c.Meetings)),
			strconv.Itoa(len(c.SpecialDates)),
		})
	}
	return RenderTable([]string{"ID", "NAME", "BIRTHDAY", "NEXT", "MEETINGS", "DATES"}, rows)
}

// FormatContact renders the contact with both event lists in display order.
func FormatContact(c *domain.Contact, today domain.Date) string {
	var b strings.Builder
	next := c.NextBirthday(today)
	fmt.Fprintf(&b, "%s %s\n", Dim("ID:      "), c.ID)
	fmt.Fprintf(&b, "%s %s (%s, turns %d)\n", Dim("Birthday:"), c.Birthday, RelativeDaysStyled(next, today), next.Year-c.Birthday.Year)

	for _, cat := range []domain.EventCategory{domain.CategoryMeeting, domain.CategorySpecialDate} {
		b.WriteString("\n")
		b.WriteString(Header(CategoryLabel(cat) + "s"))
		b.WriteString("\n")
		b.WriteString(FormatEvents(c.Events(cat), today))
	}
	return RenderBox(c.Name, strings.TrimRight(b.String(), "\n"))
}

// FormatEvents numbers events from 1 in the given order; the numbers are the
// indexes accepted by the remove commands.
func FormatEvents(events []domain.Event, today domain.Date) string {
	if len(events) == 0 {
		return Dim("none") + "\n"
	}
	rows := make([][]string, 0, len(events))
	for i, e := range events {
		eff := domain.EffectiveDate(e, today)
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			eff.String(),
			e.TimeOfDay().String(),
			e.Summary(),
			RecurrenceBadge(domain.RecurrenceOf(e)),
			RelativeDaysStyled(eff, today),
		})
	}
	return RenderTable([]string{"#", "DATE", "TIME", "DESCRIPTION", "REPEATS", "WHEN"}, rows)
}

// FormatEventAdded confirms an added event with the date it resolves to.
func FormatEventAdded(cat domain.EventCategory, c *domain.Contact, e domain.Event, today domain.Date) string {
	eff := domain.EffectiveDate(e, today)
	line := fmt.Sprintf("Added %s %q for %s on %s", CategoryLabel(cat), e.Summary(), c.Name, HumanDate(eff))
	if t := e.TimeOfDay(); t.Valid {
		line += " at " + t.String()
	}
	if kind := domain.RecurrenceOf(e); kind != domain.RecurNone {
		line += " " + RecurrenceBadge(kind)
	}
	return line
}
