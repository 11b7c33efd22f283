package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/friendex/internal/cli/formatter"
	"github.com/alexanderramin/friendex/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func friendexHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func runHuhForm(f *huh.Form) error {
	return f.WithProgramOptions(tea.WithAltScreen()).Run()
}

// eventFormFields holds the raw values bound to the special-date form.
type eventFormFields struct {
	date   string
	time   string
	desc   string
	repeat string
}

func (f *eventFormFields) event(today domain.Date) (domain.Event, error) {
	kind, err := domain.ParseRecurrenceKind(f.repeat)
	if err != nil {
		return nil, err
	}
	return parseEvent(strings.TrimSpace(f.date), strings.TrimSpace(f.time), strings.TrimSpace(f.desc), kind, today)
}

func specialDateForm(contactName string, fields *eventFormFields) *huh.Form {
	if fields.repeat == "" {
		fields.repeat = string(domain.RecurNone)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Description(fmt.Sprintf("Special date for %s", contactName)).
				Value(&fields.desc).
				Validate(validateRequired),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Description("First occurrence when repeating").
				Placeholder("2021-03-31").
				Value(&fields.date).
				Validate(validateDate),
			huh.NewInput().
				Title("Time (HH:MM, blank for none)").
				Placeholder("18:30").
				Value(&fields.time).
				Validate(validateOptionalTime),
			huh.NewSelect[string]().
				Title("Repeats").
				Options(
					huh.NewOption("Never", string(domain.RecurNone)),
					huh.NewOption("Weekly, same weekday", string(domain.RecurWeekly)),
					huh.NewOption("Monthly, same day (last day in short months)", string(domain.RecurMonthly)),
				).
				Value(&fields.repeat),
		),
	).WithTheme(friendexHuhTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateDate(s string) error {
	_, err := domain.ParseDate(strings.TrimSpace(s))
	return err
}

func validateOptionalTime(s string) error {
	_, err := domain.ParseTimeOfDay(strings.TrimSpace(s))
	return err
}
