package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	header := styleHeader().Render("Contactdesk")
	count := styleMuted().Render(fmt.Sprintf("%d entries stored", len(m.records)))

	var body string
	switch m.view {
	case viewForm:
		body = m.viewForm()
	case viewList:
		body = m.entriesList.View()
	}

	if m.confirm != confirmNone {
		body = m.overlayConfirm(body)
	}

	notify := m.renderNotify()
	footer := styleMuted().Render(m.helpLine())

	return strings.Join([]string{header, count, "", body, "", notify, footer}, "\n")
}

func (m appModel) viewForm() string {
	labels := [formFieldCount]string{
		fieldEmployerName: "Employer",
		fieldEmployerRole: "Role",
		fieldEmailID:      "Email",
		fieldJobLink:      "Job link",
	}

	labelStyle := styleMuted().Width(10)
	rows := make([]string, 0, formFieldCount)
	for i := range m.inputs {
		label := labelStyle.Render(labels[i])
		line := renderInputLine(inputLineWidth(m.width), m.inputs[i].View())
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, " ", line))
	}
	return strings.Join(rows, "\n")
}

func (m appModel) helpLine() string {
	if m.confirm != confirmNone {
		return "tab: focus  enter: select  y: confirm  n/esc: cancel"
	}
	switch m.view {
	case viewList:
		return "enter/e: edit  d: delete  ctrl+d: download csv  ctrl+s: save csv  ctrl+g: clear all  esc: back  q: quit"
	default:
		return "enter: add entry  tab: next field  ctrl+l: view entries  ctrl+d: download csv  ctrl+s: save csv  ctrl+c: quit"
	}
}

func (m appModel) overlayConfirm(body string) string {
	var title, text string
	switch m.confirm {
	case confirmDelete:
		title = "Delete entry"
		if m.confirmIndex >= 0 && m.confirmIndex < len(m.records) {
			name := strings.TrimSpace(m.records[m.confirmIndex].EmployerName)
			if name == "" {
				name = fmt.Sprintf("entry %d", m.confirmIndex+1)
			}
			text = fmt.Sprintf("Delete %q? This cannot be undone.", name)
		} else {
			text = "Delete this entry? This cannot be undone."
		}
	case confirmClearAll:
		title = "Clear all entries"
		text = fmt.Sprintf("Delete ALL %d entries? This cannot be undone.", len(m.records))
	}

	modal := renderConfirmModal(m.width, title, text, "Delete", "Cancel", m.confirmFocus)

	h := lipgloss.Height(body)
	if h < lipgloss.Height(modal) {
		return modal
	}
	return lipgloss.Place(lipgloss.Width(body), h, lipgloss.Center, lipgloss.Center, modal)
}

func inputLineWidth(width int) int {
	w := width - 14
	if w < 20 {
		w = 20
	}
	if w > 64 {
		w = 64
	}
	return w
}
