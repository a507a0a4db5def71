package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"

	"contactdesk-cli/internal/export"
	"contactdesk-cli/internal/model"
)

func (m appModel) Init() tea.Cmd { return textinput.Blink }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case notifyExpireMsg:
		if msg.seq == m.notifySeq {
			m.notifyText = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.confirm != confirmNone {
			return m.updateConfirm(msg)
		}
		switch m.view {
		case viewForm:
			return m.updateForm(msg)
		case viewList:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab", "down":
		m.focusField((m.focus + 1) % formFieldCount)
		return m, textinput.Blink

	case "shift+tab", "up":
		m.focusField((m.focus + formFieldCount - 1) % formFieldCount)
		return m, textinput.Blink

	case "enter":
		return m.submitCreate()

	case "ctrl+l":
		// "View entries": full re-render of the list from the current store contents.
		if cmd := m.reloadRecords(); cmd != nil {
			return m, cmd
		}
		m.refreshEntriesList()
		m.view = viewList
		return m, nil

	case "ctrl+d":
		cmd := m.exportDownload()
		return m, cmd

	case "ctrl+s":
		cmd := m.exportDirect()
		return m, cmd

	case "ctrl+g":
		m.confirm = confirmClearAll
		m.confirmFocus = confirmFocusCancel
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc", "backspace":
		// Back to the form; no data side effect.
		m.view = viewForm
		return m, nil

	case "enter", "e":
		if it, ok := m.entriesList.SelectedItem().(recordItem); ok {
			m.prefillForm(it.record)
			m.view = viewForm
			return m, textinput.Blink
		}
		return m, nil

	case "d", "x":
		if it, ok := m.entriesList.SelectedItem().(recordItem); ok {
			m.confirm = confirmDelete
			m.confirmFocus = confirmFocusCancel
			m.confirmIndex = it.index
		}
		return m, nil

	case "ctrl+d":
		cmd := m.exportDownload()
		return m, cmd

	case "ctrl+s":
		cmd := m.exportDirect()
		return m, cmd

	case "ctrl+g":
		m.confirm = confirmClearAll
		m.confirmFocus = confirmFocusCancel
		return m, nil
	}

	var cmd tea.Cmd
	m.entriesList, cmd = m.entriesList.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil

	case "y":
		return m.confirmAccepted()

	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.confirmAccepted()
		}
		m.confirm = confirmNone
		return m, nil

	case "n", "esc", "ctrl+g":
		// Declining is a silent no-op, not an error.
		m.confirm = confirmNone
		return m, nil
	}
	return m, nil
}

func (m appModel) confirmAccepted() (tea.Model, tea.Cmd) {
	kind := m.confirm
	m.confirm = confirmNone
	switch kind {
	case confirmDelete:
		return m.performDelete(m.confirmIndex)
	case confirmClearAll:
		return m.performClearAll()
	}
	return m, nil
}

// submitCreate always appends: edit-intent pre-fills the form, but there is no
// update-in-place path.
func (m appModel) submitCreate() (tea.Model, tea.Cmd) {
	rec := model.NewRecord(
		m.inputs[fieldEmployerName].Value(),
		m.inputs[fieldEmployerRole].Value(),
		m.inputs[fieldEmailID].Value(),
		m.inputs[fieldJobLink].Value(),
		time.Now(),
	)
	if _, err := m.store.Append(context.Background(), rec); err != nil {
		cmd := m.notify("Save failed: "+err.Error(), notifyError)
		return m, cmd
	}
	if cmd := m.reloadRecords(); cmd != nil {
		return m, cmd
	}
	m.clearForm()
	m.refreshEntriesList()
	cmd := m.notify("Entry added", notifySuccess)
	return m, cmd
}

func (m appModel) performDelete(index int) (tea.Model, tea.Cmd) {
	if err := m.store.DeleteAt(context.Background(), index); err != nil {
		cmd := m.notify("Delete failed: "+err.Error(), notifyError)
		return m, cmd
	}
	if cmd := m.reloadRecords(); cmd != nil {
		return m, cmd
	}
	m.refreshEntriesList()
	cmd := m.notify("Entry deleted", notifySuccess)
	return m, cmd
}

func (m appModel) performClearAll() (tea.Model, tea.Cmd) {
	if err := m.store.Clear(context.Background()); err != nil {
		cmd := m.notify("Clear failed: "+err.Error(), notifyError)
		return m, cmd
	}
	if cmd := m.reloadRecords(); cmd != nil {
		return m, cmd
	}
	m.refreshEntriesList()
	cmd := m.notify("All entries cleared", notifySuccess)
	return m, cmd
}

func (m *appModel) exportDownload() tea.Cmd {
	if len(m.records) == 0 {
		return m.notify("No entries to export", notifyError)
	}
	path, err := export.Write(m.exportDir, export.DownloadName(time.Now()), m.records)
	if err != nil {
		return m.notify("Export failed: "+err.Error(), notifyError)
	}
	return m.notify("Exported "+path, notifySuccess)
}

func (m *appModel) exportDirect() tea.Cmd {
	if len(m.records) == 0 {
		return m.notify("No entries to export", notifyError)
	}
	if _, err := export.Write(m.exportDir, export.DirectName, m.records); err != nil {
		return m.notify("Export failed: "+err.Error(), notifyError)
	}
	return m.notify(fmt.Sprintf("Exported %s", export.DirectName), notifySuccess)
}

// reloadRecords refreshes the render copy from the store. Returns a non-nil
// notify cmd only on failure (the old copy stays on screen).
func (m *appModel) reloadRecords() tea.Cmd {
	records, err := m.store.GetAll(context.Background())
	if err != nil {
		return m.notify("Reload failed: "+err.Error(), notifyError)
	}
	m.records = records
	return nil
}
