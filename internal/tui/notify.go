package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// notifyAutoClearAfter is how long a status message stays visible. Each notify
// call starts its own independent expiry timer; overlapping calls replace the
// text without queueing.
const notifyAutoClearAfter = 3 * time.Second

func (m *appModel) notify(message string, kind notifyKind) tea.Cmd {
	m.notifyText = message
	m.notifyKind = kind
	m.notifySeq++
	seq := m.notifySeq
	return tea.Tick(notifyAutoClearAfter, func(time.Time) tea.Msg { return notifyExpireMsg{seq: seq} })
}

func (m appModel) renderNotify() string {
	if m.notifyText == "" {
		return ""
	}
	st := lipgloss.NewStyle().Foreground(colorNotifySuccessFg)
	if m.notifyKind == notifyError {
		st = lipgloss.NewStyle().Foreground(colorNotifyErrorFg)
	}
	return st.Render(m.notifyText)
}
