package cli

import (
	"fmt"

	"contactdesk-cli/internal/format"

	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all contact records in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return err
			}
			records, err := s.GetAll(cmd.Context())
			if err != nil {
				return err
			}
			return format.WriteJSON(cmd.OutOrStdout(), records, app.PrettyJSON)
		},
	}
}

func newCountCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the entry-count indicator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return err
			}
			count, err := s.Count(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), countIndicator(count))
			return err
		},
	}
}

// countIndicator is the user-facing entry-count text.
func countIndicator(n int) string {
	return fmt.Sprintf("%d entries stored", n)
}
