package store

import (
	"os"
	"path/filepath"
)

const dbFileName = "contacts.sqlite"

// Store wraps the durable home of the record collection: one SQLite file under Dir.
//
// The collection is the sole persisted aggregate. Every mutation is expressed as
// read-modify-write on the full ordered sequence (see ReplaceAll); there is no
// per-record update path.
type Store struct {
	Dir string
}

// DefaultDir is the store location when neither --dir nor CONTACTDESK_DIR is set.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".contactdesk"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) dbPath() string {
	return filepath.Join(filepath.Clean(s.Dir), dbFileName)
}
