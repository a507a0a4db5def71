package store

import (
	"context"
	"fmt"
	"sync"

	"contactdesk-cli/internal/model"
)

// rmwMu serializes read-modify-write sequences within the process.
//
// The store has no transactional guard across GetAll/ReplaceAll pairs, so two
// interleaved mutations could otherwise race and the second write would silently
// clobber the first. A single-writer queue closes that hole for in-process
// callers; cross-process writers are still serialized only at the SQLite level.
var rmwMu sync.Mutex

type indexError struct {
	index  int
	length int
}

func (e indexError) Error() string {
	return fmt.Sprintf("record index out of range: %d (collection length %d)", e.index, e.length)
}

// Append stamps nothing itself: callers pass a fully-built record (timestamp
// included). Returns the new collection length.
func (s Store) Append(ctx context.Context, r model.Record) (int, error) {
	rmwMu.Lock()
	defer rmwMu.Unlock()

	records, err := s.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	records = append(records, r)
	if err := s.ReplaceAll(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

// DeleteAt removes the record at the given positional index and rewrites the
// collection without it, preserving the relative order of the survivors.
func (s Store) DeleteAt(ctx context.Context, index int) error {
	rmwMu.Lock()
	defer rmwMu.Unlock()

	records, err := s.GetAll(ctx)
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return indexError{index: index, length: len(records)}
	}
	records = append(records[:index], records[index+1:]...)
	return s.ReplaceAll(ctx, records)
}

// Clear replaces the entire collection with an empty sequence.
func (s Store) Clear(ctx context.Context) error {
	rmwMu.Lock()
	defer rmwMu.Unlock()

	return s.ReplaceAll(ctx, []model.Record{})
}

func (s Store) Count(ctx context.Context) (int, error) {
	records, err := s.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
