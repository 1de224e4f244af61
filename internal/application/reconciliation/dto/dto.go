package dto

import "fmt"

// ImportResult is the outcome of one spreadsheet batch.
type ImportResult struct {
	Inserted    int      `json:"inserted" yaml:"inserted"`
	Updated     int      `json:"updated" yaml:"updated"`
	Skipped     int      `json:"skipped" yaml:"skipped"`
	SkipReasons []string `json:"skip_reasons" yaml:"skip_reasons"`
}

func (r *ImportResult) Summary() string {
	return fmt.Sprintf("Inserted: %d, Updated: %d, Skipped: %d", r.Inserted, r.Updated, r.Skipped)
}

// Skip records a rejected row. rowNumber is the 1-based spreadsheet row.
func (r *ImportResult) Skip(rowNumber int, reason string) {
	r.Skipped++
	r.SkipReasons = append(r.SkipReasons, fmt.Sprintf("Row %d: %s", rowNumber, reason))
}

// AddResult reports whether a single add created a new record.
type AddResult struct {
	ID      uint `json:"id"`
	Created bool `json:"created"`
}
