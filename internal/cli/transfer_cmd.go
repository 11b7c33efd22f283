package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/friendex/internal/storage"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var formatStr, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all contacts as json, yaml or ics",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := formatFor(formatStr, out)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			n, err := app.Transfer.Export(cmd.Context(), w, format)
			if err != nil {
				return err
			}
			if out != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d contacts to %s\n", n, out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatStr, "format", "", "json, yaml or ics (default from --out extension, else json)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var formatStr string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import contacts from a json or yaml export",
		Long:  "Import contacts from a json or yaml export. Nothing is written unless every record is valid.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := formatFor(formatStr, args[0])
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			result, err := app.Transfer.Import(cmd.Context(), f, format)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d contacts (%d meetings, %d special dates)\n",
				len(result.Contacts), result.MeetingCount, result.DateCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&formatStr, "format", "", "json or yaml (default from the file extension)")
	return cmd
}

// formatFor prefers an explicit format, then the file extension, then json.
func formatFor(explicit, path string) (storage.Format, error) {
	if explicit != "" {
		return storage.ParseFormat(explicit)
	}
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		if f, err := storage.ParseFormat(ext); err == nil {
			return f, nil
		}
	}
	return storage.FormatJSON, nil
}
