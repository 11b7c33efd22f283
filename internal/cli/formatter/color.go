package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/friendex/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// SetPlain disables colors and text attributes when plain is true, e.g. when
// stdout is piped.
func SetPlain(plain bool) {
	if plain {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// RecurrenceBadge labels how an event repeats.
func RecurrenceBadge(kind domain.RecurrenceKind) string {
	switch kind {
	case domain.RecurWeekly:
		return StyleBlue.Render("↻ weekly")
	case domain.RecurMonthly:
		return StylePurple.Render("↻ monthly")
	default:
		return StyleDim.Render("once")
	}
}

// CategoryLabel is the singular display name of an event list.
func CategoryLabel(cat domain.EventCategory) string {
	if cat == domain.CategoryMeeting {
		return "meeting"
	}
	return "special date"
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
