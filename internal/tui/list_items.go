package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"contactdesk-cli/internal/model"
)

// recordItem adapts one record (plus its positional index) to the bubbles list.
type recordItem struct {
	index  int
	record model.Record
}

func (it recordItem) Title() string {
	name := strings.TrimSpace(it.record.EmployerName)
	if name == "" {
		name = "(no employer)"
	}
	role := strings.TrimSpace(it.record.EmployerRole)
	if role == "" {
		return fmt.Sprintf("%d. %s", it.index+1, name)
	}
	return fmt.Sprintf("%d. %s — %s", it.index+1, name, role)
}

func (it recordItem) Description() string {
	parts := []string{}
	if v := strings.TrimSpace(it.record.EmailID); v != "" {
		parts = append(parts, v)
	}
	if v := strings.TrimSpace(it.record.JobLink); v != "" {
		parts = append(parts, v)
	}
	if v := strings.TrimSpace(it.record.Timestamp); v != "" {
		parts = append(parts, v)
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, "  ")
}

func (it recordItem) FilterValue() string { return it.record.EmployerName }

func newEntriesList() list.Model {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(colorSelectedFg).
		BorderForeground(colorAccent)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(colorMuted).
		BorderForeground(colorAccent)

	l := list.New([]list.Item{}, d, 0, 0)
	l.Title = "Entries"
	// Rows are addressed by position (edit/delete); filtering would desync the
	// visible index from the stored one.
	l.SetFilteringEnabled(false)
	l.SetShowFilter(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	return l
}
