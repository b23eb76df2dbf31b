// Package stats holds the per-run counters printed at the end of every run.
package stats

import (
	"fmt"
	"io"
)

// ClosingMessage ends the statistics block.
const ClosingMessage = "Thank you for using the Library Book Tracker."

// Stats counts what happened during a single run.
type Stats struct {
	ValidRecords  int
	SearchResults int
	BooksAdded    int
	Errors        int
}

// Add returns the field-wise sum of s and other.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		ValidRecords:  s.ValidRecords + other.ValidRecords,
		SearchResults: s.SearchResults + other.SearchResults,
		BooksAdded:    s.BooksAdded + other.BooksAdded,
		Errors:        s.Errors + other.Errors,
	}
}

// Write prints the statistics block to w.
func (s Stats) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"\n=== Statistics ===\nValid records processed: %d\nSearch results: %d\nBooks added: %d\nErrors encountered: %d\n%s\n",
		s.ValidRecords, s.SearchResults, s.BooksAdded, s.Errors, ClosingMessage)
	return err
}
