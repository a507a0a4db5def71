package store

import (
	"context"
	"testing"
	"time"

	"contactdesk-cli/internal/model"
)

func testRecord(name string) model.Record {
	return model.NewRecord(name, "Eng", "jobs@"+name+".test", "", time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
}

func TestGetAll_FreshStore_ReturnsEmpty(t *testing.T) {
	t.Parallel()

	s := Store{Dir: t.TempDir()}
	records, err := s.GetAll(context.Background())
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if records == nil {
		t.Fatalf("expected non-nil empty slice")
	}
	if len(records) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(records))
	}
}

func TestAppend_GrowsByOneAndPreservesLast(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	n, err := s.Append(ctx, testRecord("acme"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected length 1 after first append, got %d", n)
	}

	want := testRecord("globex")
	n, err = s.Append(ctx, want)
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected length 2, got %d", n)
	}

	records, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if got := records[len(records)-1]; got != want {
		t.Fatalf("last record = %+v, want %+v", got, want)
	}
}

func TestAppend_AllowsDuplicates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	r := testRecord("acme")
	if _, err := s.Append(ctx, r); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := s.Append(ctx, r); err != nil {
		t.Fatalf("append duplicate: %v", err)
	}
	records, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("duplicates must be permitted; got %d records", len(records))
	}
}

func TestDeleteAt_RemovesOnlyThatIndex(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	names := []string{"a", "b", "c", "d"}
	for _, n := range names {
		if _, err := s.Append(ctx, testRecord(n)); err != nil {
			t.Fatalf("append %s: %v", n, err)
		}
	}

	if err := s.DeleteAt(ctx, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	records, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	wantOrder := []string{"a", "c", "d"}
	for i, w := range wantOrder {
		if records[i].EmployerName != w {
			t.Fatalf("position %d = %q, want %q (relative order must be preserved)", i, records[i].EmployerName, w)
		}
	}
}

func TestDeleteAt_OutOfRange(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	if _, err := s.Append(ctx, testRecord("acme")); err != nil {
		t.Fatalf("append: %v", err)
	}

	for _, idx := range []int{-1, 1, 99} {
		if err := s.DeleteAt(ctx, idx); err == nil {
			t.Fatalf("expected error deleting index %d from length-1 collection", idx)
		}
	}

	records, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("failed delete must not mutate; got %d records", len(records))
	}
}

func TestClear_AlwaysYieldsEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	// Clearing an empty store is fine.
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear empty: %v", err)
	}

	for _, n := range []string{"a", "b", "c"} {
		if _, err := s.Append(ctx, testRecord(n)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	count, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 records after clear, got %d", count)
	}
}

func TestReplaceAll_PersistsAcrossOpens(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	in := []model.Record{testRecord("acme"), testRecord("globex")}
	if err := (Store{Dir: dir}).ReplaceAll(ctx, in); err != nil {
		t.Fatalf("replace all: %v", err)
	}

	// Fresh Store value, same dir: simulates a new popup open.
	records, err := (Store{Dir: dir}).GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for i := range in {
		if records[i] != in[i] {
			t.Fatalf("record %d = %+v, want %+v", i, records[i], in[i])
		}
	}
}

func TestTimestampSurvivesPersistence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := Store{Dir: t.TempDir()}

	r := model.NewRecord("Acme", "Eng", "a@acme.com", "", time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	if _, err := s.Append(ctx, r); err != nil {
		t.Fatalf("append: %v", err)
	}
	records, err := s.GetAll(ctx)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if got := records[0].Timestamp; got != "2026-01-02T03:04:05Z" {
		t.Fatalf("timestamp = %q, want RFC3339 creation stamp", got)
	}
}
