// Package records reads the raw source records (clients, service
// engagements, vendor purchases) from a project's data directory.
// Individual malformed rows are skipped, never fatal; readers report
// skip counts so callers can log them.
package records

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// File names inside the data directory.
const (
	ClientsFile   = "clients.csv"
	ServicesFile  = "services.csv"
	PurchasesFile = "purchases.csv"
)

// parseDate accepts an ISO 8601 timestamp or a bare calendar date.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// open opens a data file; a missing file reads as empty.
func open(dir, name string) (*os.File, error) {
	f, err := os.Open(filepath.Join(dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	return f, nil
}

// LoadClients reads clients.csv from a data directory.
func LoadClients(dir string) ([]Client, error) {
	f, err := open(dir, ClientsFile)
	if err != nil || f == nil {
		return nil, err
	}
	defer f.Close()
	return ReadClients(f)
}
