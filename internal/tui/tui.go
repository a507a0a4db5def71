package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"contactdesk-cli/internal/store"
)

// Run opens the interactive entry manager. A store that cannot be opened is
// fatal to initialization: we abort before wiring any handlers rather than
// starting a half-working UI.
func Run(s store.Store, exportDir string) error {
	records, err := s.GetAll(context.Background())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	applyColorProfilePreference()
	applyThemePreference()

	m := newAppModel(s, exportDir, records)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
