package formatter

import (
	"fmt"

	"github.com/alexanderramin/friendex/internal/domain"
	"github.com/alexanderramin/friendex/internal/service"
)

// FormatUpcoming renders the look-ahead list, soonest first.
func FormatUpcoming(items []service.UpcomingItem, today domain.Date, days int) string {
	if len(items) == 0 {
		return fmt.Sprintf("Nothing coming up in the next %d days.\n", days)
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		what := StyleYellow.Render("★ birthday")
		if it.Event != nil {
			what = it.Event.Summary()
			if kind := domain.RecurrenceOf(it.Event); kind != domain.RecurNone {
				what += " " + RecurrenceBadge(kind)
			}
		}
		rows = append(rows, []string{
			HumanDate(it.Date),
			RelativeDaysStyled(it.Date, today),
			Bold(it.ContactName),
			what,
		})
	}
	return Header(fmt.Sprintf("Next %d days", days)) + "\n" +
		RenderTable([]string{"DATE", "WHEN", "CONTACT", "WHAT"}, rows)
}
