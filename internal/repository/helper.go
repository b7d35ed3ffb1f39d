package repository

import (
	"fmt"
	"time"
)

// ParseTime parses a stored date string. Handles the formats the ledger writes
// (RFC3339) as well as SQLite's CURRENT_TIMESTAMP and plain date columns.
func ParseTime(str string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, str); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date: %q", str)
}
