package cli

import (
	"strings"

	"contactdesk-cli/internal/format"
	"contactdesk-cli/internal/store"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	var storeDir, exportDir string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or update cross-run preferences (~/.contactdesk/config.json)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}

			changed := false
			if cmd.Flags().Changed("store-dir") {
				cfg.StoreDir = strings.TrimSpace(storeDir)
				changed = true
			}
			if cmd.Flags().Changed("export-dir") {
				cfg.ExportDir = strings.TrimSpace(exportDir)
				changed = true
			}
			if changed {
				if err := store.SaveConfig(cfg); err != nil {
					return err
				}
			}

			return format.WriteJSON(cmd.OutOrStdout(), cfg, app.PrettyJSON)
		},
	}

	cmd.Flags().StringVar(&storeDir, "store-dir", "", "Persist a default store directory")
	cmd.Flags().StringVar(&exportDir, "export-dir", "", "Persist a default CSV export directory")

	return cmd
}
