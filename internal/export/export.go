package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"contactdesk-cli/internal/csvenc"
	"contactdesk-cli/internal/model"
)

// Two egress paths with different filenames (the downstream pipeline watches for
// both): a date-stamped "download" and a fixed-name "direct save".
const DirectName = "contacts.csv"

// ErrNoRecords is returned when an export is attempted on an empty collection.
// Callers surface it as a user-facing notification; no file is written.
var ErrNoRecords = errors.New("no records to export")

func DownloadName(now time.Time) string {
	return fmt.Sprintf("contacts_%s.csv", now.Format("2006-01-02"))
}

// Write encodes the collection and writes it under dir with the given filename.
// Returns the full path of the written file.
func Write(dir, name string, records []model.Record) (string, error) {
	if len(records) == 0 {
		return "", ErrNoRecords
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(csvenc.Encode(records)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
