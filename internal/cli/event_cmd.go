package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/friendex/internal/cli/formatter"
	"github.com/alexanderramin/friendex/internal/domain"
	"github.com/spf13/cobra"
)

func newMeetingCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "meeting",
		Aliases: []string{"meetings", "m"},
		Short:   "Record past meetings with a contact",
	}
	cmd.AddCommand(
		newMeetingAddCmd(app),
		newEventRemoveCmd(app, domain.CategoryMeeting),
	)
	return cmd
}

func newDateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "date",
		Aliases: []string{"dates", "d"},
		Short:   "Manage a contact's special dates",
	}
	cmd.AddCommand(
		newDateAddCmd(app),
		newEventRemoveCmd(app, domain.CategorySpecialDate),
	)
	return cmd
}

func newMeetingAddCmd(app *App) *cobra.Command {
	var date, clock, desc string

	cmd := &cobra.Command{
		Use:   "add REF",
		Short: "Record a meeting (defaults to today)",
		Long:  refHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Contacts.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			today := app.today()
			e, err := parseEvent(date, clock, desc, domain.RecurNone, today)
			if err != nil {
				return err
			}

			updated, err := app.Events.AddMeeting(cmd.Context(), c.ID, e)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEventAdded(domain.CategoryMeeting, updated, e, today))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Meeting date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&clock, "time", "", "Meeting time (HH:MM or HHmm)")
	cmd.Flags().StringVar(&desc, "desc", "", "What you did")
	_ = cmd.MarkFlagRequired("desc")

	return cmd
}

func newDateAddCmd(app *App) *cobra.Command {
	var date, clock, desc string
	var interactive bool
	repeat := newRecurrenceFlag()

	cmd := &cobra.Command{
		Use:   "add REF",
		Short: "Add a special date, optionally repeating weekly or monthly",
		Long:  refHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Contacts.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			today := app.today()
			var e domain.Event
			if interactive {
				fields := &eventFormFields{date: date, time: clock, desc: desc, repeat: string(repeat.Kind())}
				if err := app.runForm(specialDateForm(c.Name, fields)); err != nil {
					return err
				}
				e, err = fields.event(today)
			} else {
				if desc == "" || date == "" {
					return fmt.Errorf("--date and --desc are required (or use --interactive)")
				}
				e, err = parseEvent(date, clock, desc, repeat.Kind(), today)
			}
			if err != nil {
				return err
			}

			updated, err := app.Events.AddSpecialDate(cmd.Context(), c.ID, e)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatEventAdded(domain.CategorySpecialDate, updated, e, today))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date, or the first occurrence when repeating (YYYY-MM-DD)")
	cmd.Flags().StringVar(&clock, "time", "", "Time of day (HH:MM or HHmm)")
	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().Var(repeat, "repeat", "Repeat the date")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the fields in a form")

	return cmd
}

func newEventRemoveCmd(app *App, cat domain.EventCategory) *cobra.Command {
	label := formatter.CategoryLabel(cat)
	return &cobra.Command{
		Use:     "remove REF N",
		Aliases: []string{"rm"},
		Short:   fmt.Sprintf("Remove the Nth %s as listed by 'contact show'", label),
		Long:    refHelp,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid %s number %q", label, args[1])
			}
			c, err := app.Contacts.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			removed, err := app.Events.Remove(cmd.Context(), c.ID, cat, n)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %q from %s\n", label, removed.Summary(), c.Name)
			return nil
		},
	}
}

// parseEvent builds an event from flag values. An empty date means today.
func parseEvent(date, clock, desc string, kind domain.RecurrenceKind, today domain.Date) (domain.Event, error) {
	d := today
	if date != "" {
		var err error
		if d, err = domain.ParseDate(date); err != nil {
			return nil, err
		}
	}
	t, err := domain.ParseTimeOfDay(clock)
	if err != nil {
		return nil, err
	}
	return domain.NewEvent(d, t, desc, kind), nil
}
