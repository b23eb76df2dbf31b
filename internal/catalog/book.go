// Package catalog holds the book record format and the in-memory catalog
// loaded from a colon-delimited text file.
package catalog

import (
	"strconv"
	"strings"

	"github.com/lepinkainen/booktracker/internal/errors"
)

// FieldSeparator joins the fields of a catalog line.
const FieldSeparator = ":"

// fieldCount is the number of fields in a catalog line.
const fieldCount = 4

// Book is one validated catalog record.
type Book struct {
	Title  string `json:"title" db:"title"`
	Author string `json:"author" db:"author"`
	ISBN   string `json:"isbn" db:"isbn"`
	Copies int    `json:"copies" db:"copies"`
}

// Line returns the canonical catalog line for b.
func (b Book) Line() string {
	return b.Title + FieldSeparator + b.Author + FieldSeparator + b.ISBN + FieldSeparator + strconv.Itoa(b.Copies)
}

// SplitFields splits s on the field separator, keeping empty fields.
func SplitFields(s string) []string {
	return strings.Split(s, FieldSeparator)
}

// HasRecordShape reports whether s splits into exactly four fields.
func HasRecordShape(s string) bool {
	return len(SplitFields(s)) == fieldCount
}

// ParseLine parses and validates a title:author:isbn:copies line.
// Catalog lines and new records typed on the command line share this path.
func ParseLine(line string) (Book, error) {
	parts := SplitFields(line)
	if len(parts) != fieldCount {
		return Book{}, errors.NewMalformedEntryError("Book entry must contain exactly 4 fields separated by ':'.")
	}

	title := strings.TrimSpace(parts[0])
	author := strings.TrimSpace(parts[1])
	isbn := strings.TrimSpace(parts[2])
	copiesStr := strings.TrimSpace(parts[3])

	if title == "" {
		return Book{}, errors.NewMalformedEntryError("Title cannot be empty.")
	}
	if author == "" {
		return Book{}, errors.NewMalformedEntryError("Author cannot be empty.")
	}
	if !IsISBN13(isbn) {
		return Book{}, errors.NewInvalidISBNError("ISBN must contain exactly 13 digits.")
	}

	// copies must fit a 32-bit signed integer
	copies, err := strconv.ParseInt(copiesStr, 10, 32)
	if err != nil {
		return Book{}, errors.NewMalformedEntryError("Copies must be a valid integer.")
	}
	if copies <= 0 {
		return Book{}, errors.NewMalformedEntryError("Copies must be a positive integer greater than zero.")
	}

	return Book{Title: title, Author: author, ISBN: isbn, Copies: int(copies)}, nil
}

// IsISBN13 reports whether s is exactly 13 ASCII digits.
func IsISBN13(s string) bool {
	if len(s) != 13 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
