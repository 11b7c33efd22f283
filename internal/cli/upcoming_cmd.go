package cli

import (
	"fmt"

	"github.com/alexanderramin/friendex/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newUpcomingCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List birthdays and special dates coming up",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("days") && app.UpcomingDays > 0 {
				days = app.UpcomingDays
			}
			items, err := app.Events.Upcoming(cmd.Context(), days)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUpcoming(items, app.today(), days))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Look-ahead window in days")
	return cmd
}
