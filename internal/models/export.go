package models

import (
	"fmt"
	"time"
)

// ExportVersion is the envelope version written by exports and accepted
// by imports.
const ExportVersion = "1.0"

// ExportEnvelope is the JSON document produced by export and consumed by
// import-merge.
type ExportEnvelope struct {
	Version    string    `json:"version"`
	ExportDate time.Time `json:"exportDate"`
	Notes      []Note    `json:"notes"`
}

// ExportFileName returns the conventional export filename for a given day.
func ExportFileName(date time.Time) string {
	return fmt.Sprintf("vibe-coding-notes-%s.json", date.Format("2006-01-02"))
}

// ImportResult reports the outcome of an import-merge.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}
