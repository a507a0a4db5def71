package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"contactdesk-cli/internal/format"

	"github.com/spf13/cobra"
)

func newDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete the record at a positional index (0-based)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("index must be an integer: %q", args[0])
			}

			s, err := loadStore(app)
			if err != nil {
				return err
			}

			if !yes && !confirmPrompt(cmd, fmt.Sprintf("Delete record %d?", index)) {
				// Declined confirmation is a silent no-op, not an error.
				return nil
			}

			if err := s.DeleteAt(cmd.Context(), index); err != nil {
				return err
			}
			count, err := s.Count(cmd.Context())
			if err != nil {
				return err
			}

			out := struct {
				Deleted int `json:"deleted"`
				Count   int `json:"count"`
			}{Deleted: index, Count: count}
			return format.WriteJSON(cmd.OutOrStdout(), out, app.PrettyJSON)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

func newClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadStore(app)
			if err != nil {
				return err
			}

			if !yes && !confirmPrompt(cmd, "Delete ALL records?") {
				return nil
			}

			if err := s.Clear(cmd.Context()); err != nil {
				return err
			}

			out := struct {
				Cleared bool `json:"cleared"`
				Count   int  `json:"count"`
			}{Cleared: true, Count: 0}
			return format.WriteJSON(cmd.OutOrStdout(), out, app.PrettyJSON)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

// confirmPrompt asks a y/N question on the command's input stream.
// Anything other than an explicit yes declines.
func confirmPrompt(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
