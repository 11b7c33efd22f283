package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/friendex/internal/cli/formatter"
	"github.com/alexanderramin/friendex/internal/domain"
	"github.com/spf13/cobra"
)

func newContactCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contact",
		Aliases: []string{"contacts", "c"},
		Short:   "Manage contacts",
	}

	cmd.AddCommand(
		newContactAddCmd(app),
		newContactListCmd(app),
		newContactShowCmd(app),
		newContactRemoveCmd(app),
	)

	return cmd
}

func newContactAddCmd(app *App) *cobra.Command {
	var name, birthday string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			bday, err := domain.ParseDate(birthday)
			if err != nil {
				return fmt.Errorf("invalid birthday: %w", err)
			}

			c := &domain.Contact{Name: name, Birthday: bday}
			if err := app.Contacts.Create(cmd.Context(), c); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s\n", formatter.Bold(c.Name), formatter.TruncID(c.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Contact name")
	cmd.Flags().StringVar(&birthday, "birthday", "", "Birthday (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("birthday")

	return cmd
}

func newContactListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts, err := app.Contacts.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(contacts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No contacts found.")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatContactList(contacts, app.today()))
			return nil
		},
	}
}

func newContactShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show REF",
		Short: "Show a contact with its meetings and special dates",
		Long:  refHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Contacts.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatContact(c, app.today()))
			return nil
		},
	}
}

func newContactRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove REF",
		Aliases: []string{"rm"},
		Short:   "Remove a contact and all of its events",
		Long:    refHelp,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Contacts.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := app.Contacts.Delete(cmd.Context(), c.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", c.Name)
			return nil
		},
	}
}

var refHelp = strings.TrimSpace(`
REF is a contact ID, an unambiguous ID prefix, or the contact's exact name
(case-insensitive).`)
