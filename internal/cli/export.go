package cli

import (
	"time"

	"contactdesk-cli/internal/export"
	"contactdesk-cli/internal/format"

	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var direct bool
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all records as CSV",
		Long: `Export all records as CSV.

Default is the download path: a date-stamped filename (contacts_<YYYY-MM-DD>.csv).
--direct writes the fixed filename (contacts.csv) instead. Exporting an empty
collection is an error and writes nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return err
			}
			records, err := s.GetAll(cmd.Context())
			if err != nil {
				return err
			}

			name := export.DownloadName(time.Now())
			if direct {
				name = export.DirectName
			}
			path, err := export.Write(resolveExportDir(out), name, records)
			if err != nil {
				return err
			}

			res := struct {
				Path  string `json:"path"`
				Count int    `json:"count"`
			}{Path: path, Count: len(records)}
			return format.WriteJSON(cmd.OutOrStdout(), res, app.PrettyJSON)
		},
	}

	cmd.Flags().BoolVar(&direct, "direct", false, "Write the fixed filename contacts.csv instead of a date-stamped one")
	cmd.Flags().StringVar(&out, "out", "", "Directory to write the CSV into (default: export dir from env/config, else cwd)")

	return cmd
}
