package cli

import (
	"time"

	"github.com/alexanderramin/friendex/internal/domain"
	"github.com/alexanderramin/friendex/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Contacts service.ContactService
	Events   service.EventService
	Transfer service.TransferService

	// Clock defaults to time.Now. It only drives display; services read their own.
	Clock        service.Clock
	UpcomingDays int

	// RunForm runs an interactive form; nil uses runHuhForm.
	RunForm func(*huh.Form) error
}

func (a *App) today() domain.Date {
	if a.Clock == nil {
		return domain.DateOf(time.Now())
	}
	return domain.DateOf(a.Clock())
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return runHuhForm(f)
}

// NewRootCmd creates the top-level "friendex" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "friendex",
		Short:         "Keep track of friends, meetings and the dates that matter to them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newContactCmd(app),
		newMeetingCmd(app),
		newDateCmd(app),
		newUpcomingCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
