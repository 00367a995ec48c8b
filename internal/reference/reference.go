// Package reference defines the core domain types for bibliographic records.
package reference

import "fmt"

// Reference represents the metadata of a published work, as returned by a
// DOI lookup. It is a plain value: produced by the fetcher, consumed by the
// renderer, never mutated in between.
type Reference struct {
	// Identity
	DOI string `json:"doi"` // Canonical lowercase DOI

	// Metadata
	Title        string   `json:"title"`
	Authors      []Author `json:"authors"`
	JournalLong  string   `json:"journal_long"`            // Full container/journal title
	JournalShort string   `json:"journal_short,omitempty"` // Abbreviated title, falls back to JournalLong
	Publisher    string   `json:"publisher,omitempty"`
	Type         string   `json:"type,omitempty"` // journal-article, book, proceedings-article, ...

	// Publication details
	Year   int    `json:"year"`
	Volume string `json:"volume,omitempty"` // Usually numeric, occasionally a range
	Issue  string `json:"issue,omitempty"`
	Pages  string `json:"pages,omitempty"` // e.g. "4004-4011"
}

// Journal returns the short journal name, falling back to the long form.
func (r Reference) Journal() string {
	if r.JournalShort != "" {
		return r.JournalShort
	}
	return r.JournalLong
}

// VolumeInfo returns "volume (issue), pages", omitting the issue when absent.
func (r Reference) VolumeInfo() string {
	if r.Issue != "" {
		return fmt.Sprintf("%s (%s), %s", r.Volume, r.Issue, r.Pages)
	}
	return fmt.Sprintf("%s, %s", r.Volume, r.Pages)
}
