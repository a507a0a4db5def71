package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"contactdesk-cli/internal/model"
	"contactdesk-cli/internal/store"
)

func newTestModel(t *testing.T, records []model.Record) appModel {
	t.Helper()

	s := store.Store{Dir: t.TempDir()}
	if records != nil {
		if err := s.ReplaceAll(context.Background(), records); err != nil {
			t.Fatalf("seed store: %v", err)
		}
	}
	m := newAppModel(s, t.TempDir(), records)
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return mm.(appModel)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestInitialViewIsForm(t *testing.T) {
	m := newTestModel(t, nil)
	if m.view != viewForm {
		t.Fatalf("popup must open on the form view, got %v", m.view)
	}
}

func TestSubmit_AppendsClearsFormAndRefreshesCount(t *testing.T) {
	m := newTestModel(t, nil)

	m.inputs[fieldEmployerName].SetValue("Acme")
	m.inputs[fieldEmployerRole].SetValue("Eng")
	m.inputs[fieldEmailID].SetValue("a@acme.com")
	m.inputs[fieldJobLink].SetValue("")

	mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m2 := mm.(appModel)

	records, err := m2.store.GetAll(context.Background())
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record after submit, got %d", len(records))
	}
	if records[0].EmployerName != "Acme" || records[0].EmailID != "a@acme.com" {
		t.Fatalf("unexpected record: %+v", records[0])
	}
	if records[0].Timestamp == "" {
		t.Fatalf("submit must stamp the record")
	}

	for i := range m2.inputs {
		if got := m2.inputs[i].Value(); got != "" {
			t.Fatalf("form field %d not cleared after submit: %q", i, got)
		}
	}
	if !strings.Contains(m2.View(), "1 entries stored") {
		t.Fatalf("count indicator not refreshed:\n%s", m2.View())
	}
	if m2.notifyText != "Entry added" || m2.notifyKind != notifySuccess {
		t.Fatalf("expected success notification, got %q", m2.notifyText)
	}
}

func TestSubmit_EmptyFieldsAreAccepted(t *testing.T) {
	m := newTestModel(t, nil)

	mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m2 := mm.(appModel)

	records, err := m2.store.GetAll(context.Background())
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("empty submit must still append; got %d records", len(records))
	}
}

func TestViewEntries_TogglesAndBackHasNoSideEffect(t *testing.T) {
	seed := []model.Record{{EmployerName: "Acme", Timestamp: "2026-08-31T10:00:00Z"}}
	m := newTestModel(t, seed)

	mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m2 := mm.(appModel)
	if m2.view != viewList {
		t.Fatalf("ctrl+l must switch to the list view")
	}

	mm, _ = m2.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m3 := mm.(appModel)
	if m3.view != viewForm {
		t.Fatalf("esc must switch back to the form view")
	}

	records, err := m3.store.GetAll(context.Background())
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("back navigation must not touch data; got %d records", len(records))
	}
}

func TestEditIntent_PrefillsFormAndSubmitStillAppends(t *testing.T) {
	seed := []model.Record{{
		EmployerName: "Acme",
		EmployerRole: "Eng",
		EmailID:      "a@acme.com",
		JobLink:      "https://acme.test/jobs/1",
		Timestamp:    "2026-08-31T10:00:00Z",
	}}
	m := newTestModel(t, seed)

	mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m2 := mm.(appModel)

	mm, _ = m2.Update(keyRune('e'))
	m3 := mm.(appModel)
	if m3.view != viewForm {
		t.Fatalf("edit must switch to the form view")
	}
	if got := m3.inputs[fieldEmployerName].Value(); got != "Acme" {
		t.Fatalf("employer not pre-filled: %q", got)
	}
	if got := m3.inputs[fieldJobLink].Value(); got != "https://acme.test/jobs/1" {
		t.Fatalf("job link not pre-filled: %q", got)
	}

	// Submitting after edit-intent appends; the source record stays untouched.
	mm, _ = m3.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m4 := mm.(appModel)

	records, err := m4.store.GetAll(context.Background())
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("edit-intent submit must append, not update; got %d records", len(records))
	}
	if records[0].Timestamp != "2026-08-31T10:00:00Z" {
		t.Fatalf("source record mutated: %+v", records[0])
	}
}

func TestDelete_DeclineIsSilentNoop(t *testing.T) {
	seed := []model.Record{{EmployerName: "Acme", Timestamp: "2026-08-31T10:00:00Z"}}
	m := newTestModel(t, seed)

	mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m2 := mm.(appModel)

	mm, _ = m2.Update(keyRune('d'))
	m3 := mm.(appModel)
	if m3.confirm != confirmDelete {
		t.Fatalf("delete must ask for confirmation first")
	}

	mm, _ = m3.Update(keyRune('n'))
	m4 := mm.(appModel)
	if m4.confirm != confirmNone {
		t.Fatalf("decline must close the modal")
	}
	if m4.notifyText != "" {
		t.Fatalf("decline must be silent, got notification %q", m4.notifyText)
	}

	records, err := m4.store.GetAll(context.Background())
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("decline must not mutate; got %d records", len(records))
	}
}

func TestDelete_ConfirmRemovesByPosition(t *testing.T) {
	seed := []model.Record{
		{EmployerName: "a", Timestamp: "2026-08-31T10:00:00Z"},
		{EmployerName: "b", Timestamp: "2026-08-31T10:01:00Z"},
		{EmployerName: "c", Timestamp: "2026-08-31T10:02:00Z"},
	}
	m := newTestModel(t, seed)

	mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	m2 := mm.(appModel)
	m2.entriesList.Select(1)

	mm, _ = m2.Update(keyRune('d'))
	m3 := mm.(appModel)
	mm, _ = m3.Update(keyRune('y'))
	m4 := mm.(appModel)

	records, err := m4.store.GetAll(context.Background())
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records after delete, got %d", len(records))
	}
	if records[0].EmployerName != "a" || records[1].EmployerName != "c" {
		t.Fatalf("wrong record deleted: %+v", records)
	}
	if m4.notifyKind != notifySuccess {
		t.Fatalf("expected success notification after delete")
	}
}

func TestClearAll_ConfirmEmptiesCollection(t *testing.T) {
	seed := []model.Record{
		{EmployerName: "a", Timestamp: "2026-08-31T10:00:00Z"},
		{EmployerName: "b", Timestamp: "2026-08-31T10:01:00Z"},
	}
	m := newTestModel(t, seed)

	mm, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	m2 := mm.(appModel)
	if m2.confirm != confirmClearAll {
		t.Fatalf("clear-all must ask for confirmation first")
	}

	mm, _ = m2.Update(keyRune('y'))
	m3 := mm.(appModel)

	count, err := m3.store.Count(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty collection after clear-all, got %d", count)
	}
	if !strings.Contains(m3.View(), "0 entries stored") {
		t.Fatalf("count indicator not refreshed after clear-all")
	}
}
