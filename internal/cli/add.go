package cli

import (
	"time"

	"contactdesk-cli/internal/format"
	"contactdesk-cli/internal/model"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	var employer, role, email, link string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a contact record",
		Long: `Append a contact record to the collection.

Submission always appends a new record; there is no update-in-place. No field
is validated or required (empty strings are stored as-is).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return err
			}

			rec := model.NewRecord(employer, role, email, link, time.Now())
			count, err := s.Append(cmd.Context(), rec)
			if err != nil {
				return err
			}

			out := struct {
				Record model.Record `json:"record"`
				Count  int          `json:"count"`
			}{Record: rec, Count: count}
			return format.WriteJSON(cmd.OutOrStdout(), out, app.PrettyJSON)
		},
	}

	cmd.Flags().StringVar(&employer, "employer", "", "Employer name")
	cmd.Flags().StringVar(&role, "role", "", "Role applied for")
	cmd.Flags().StringVar(&email, "email", "", "Contact email")
	cmd.Flags().StringVar(&link, "link", "", "Job posting link (optional)")

	return cmd
}
