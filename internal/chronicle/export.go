package chronicle

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// ExportCSV writes the full day history to dir/day_reports.csv for offline
// analysis. The directory is created if needed.
func (db *DB) ExportCSV(dir string) error {
	records, err := db.AllDays()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(dir, "day_reports.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.Marshal(records, f); err != nil {
		return fmt.Errorf("writing day reports: %w", err)
	}
	return nil
}
