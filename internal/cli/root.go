package cli

import (
	"os"
	"path/filepath"
	"strings"

	"contactdesk-cli/internal/store"
	"contactdesk-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Dir        string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "contactdesk",
		Short:        "Contactdesk (local-first) contact tracker CLI + TUI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  contactdesk

  # Scriptable commands
  contactdesk add --employer "Acme" --role "Engineer" --email jobs@acme.com
  contactdesk list
  contactdesk export
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("CONTACTDESK_DIR", ""), "Path to store dir (default: ~/.contactdesk; use for fixtures/tests)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newCountCmd(app))
	cmd.AddCommand(newDeleteCmd(app))
	cmd.AddCommand(newClearCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(app *App) error {
	s, err := loadStore(app)
	if err != nil {
		return err
	}
	return tui.Run(s, resolveExportDir(""))
}

// loadStore resolves the store directory:
// 1) --dir / CONTACTDESK_DIR
// 2) config.json storeDir
// 3) ~/.contactdesk
func loadStore(app *App) (store.Store, error) {
	dir := strings.TrimSpace(app.Dir)
	if dir == "" {
		if cfg, err := store.LoadConfig(); err == nil && cfg.StoreDir != "" {
			dir = cfg.StoreDir
		}
	}
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return store.Store{}, err
		}
		dir = d
	}
	app.Dir = dir

	s := store.Store{Dir: dir}
	if err := s.Ensure(); err != nil {
		return store.Store{}, err
	}
	return s, nil
}

// resolveExportDir resolves where CSV exports land:
// 1) --out flag
// 2) CONTACTDESK_EXPORT_DIR
// 3) config.json exportDir
// 4) current working directory
func resolveExportDir(out string) string {
	if v := strings.TrimSpace(out); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("CONTACTDESK_EXPORT_DIR")); v != "" {
		return v
	}
	if cfg, err := store.LoadConfig(); err == nil && cfg.ExportDir != "" {
		return cfg.ExportDir
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return filepath.Clean(".")
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
