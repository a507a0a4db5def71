package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"

	"contactdesk-cli/internal/model"
	"contactdesk-cli/internal/store"
)

type appModel struct {
	store     store.Store
	exportDir string

	// records is the render copy of the collection; every mutation goes through
	// the store and reloads it (full re-render, no incremental state to corrupt).
	records []model.Record

	width  int
	height int

	view view

	inputs [formFieldCount]textinput.Model
	focus  formField

	entriesList list.Model

	confirm      confirmKind
	confirmFocus confirmModalFocus
	// confirmIndex is the positional index pending deletion while confirm == confirmDelete.
	confirmIndex int

	notifyText string
	notifyKind notifyKind
	notifySeq  int
}

func newAppModel(s store.Store, exportDir string, records []model.Record) appModel {
	m := appModel{
		store:     s,
		exportDir: exportDir,
		records:   records,
		view:      viewForm,
	}

	placeholders := [formFieldCount]string{
		fieldEmployerName: "Employer name",
		fieldEmployerRole: "Role",
		fieldEmailID:      "Email",
		fieldJobLink:      "Job link (optional)",
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 0
		in.Width = 48
		m.inputs[i] = in
	}
	m.inputs[fieldEmployerName].Focus()
	m.focus = fieldEmployerName

	m.entriesList = newEntriesList()
	m.refreshEntriesList()

	return m
}

func (m *appModel) focusField(f formField) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = f
	m.inputs[f].Focus()
}

func (m *appModel) clearForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.focusField(fieldEmployerName)
}

// prefillForm implements edit-intent: the form shows the selected record's
// values, but submit still appends a new record (the source is untouched).
func (m *appModel) prefillForm(r model.Record) {
	m.inputs[fieldEmployerName].SetValue(r.EmployerName)
	m.inputs[fieldEmployerRole].SetValue(r.EmployerRole)
	m.inputs[fieldEmailID].SetValue(r.EmailID)
	m.inputs[fieldJobLink].SetValue(r.JobLink)
	m.focusField(fieldEmployerName)
}

func (m *appModel) refreshEntriesList() {
	items := make([]list.Item, 0, len(m.records))
	for i, r := range m.records {
		items = append(items, recordItem{index: i, record: r})
	}
	sel := m.entriesList.Index()
	m.entriesList.SetItems(items)
	if sel >= len(items) {
		sel = len(items) - 1
	}
	if sel >= 0 {
		m.entriesList.Select(sel)
	}
}

func (m *appModel) resize() {
	// Leave room for header, count line, notify line and footer.
	h := m.height - 8
	if h < 6 {
		h = 6
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	m.entriesList.SetSize(w, h)
}
