package catalog

import (
	"sort"
	"strings"

	"github.com/lepinkainen/booktracker/internal/errors"
)

// Catalog is the ordered set of records backing one run.
type Catalog struct {
	books []Book
}

// New returns a catalog holding books in the given order.
func New(books ...Book) *Catalog {
	c := &Catalog{books: make([]Book, 0, len(books))}
	c.books = append(c.books, books...)
	return c
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Books returns a copy of the records in catalog order.
func (c *Catalog) Books() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// SearchByISBN returns the records whose ISBN equals isbn.
// More than one match means the catalog broke its uniqueness rule and
// is reported as a DuplicateISBNError.
func (c *Catalog) SearchByISBN(isbn string) ([]Book, error) {
	var matches []Book
	for _, b := range c.books {
		if b.ISBN == isbn {
			matches = append(matches, b)
		}
	}
	if len(matches) > 1 {
		return nil, errors.NewAmbiguousISBNError(isbn)
	}
	return matches, nil
}

// SearchByTitle returns records whose title contains keyword, ignoring case.
func (c *Catalog) SearchByTitle(keyword string) []Book {
	k := strings.ToLower(keyword)
	var matches []Book
	for _, b := range c.books {
		if strings.Contains(strings.ToLower(b.Title), k) {
			matches = append(matches, b)
		}
	}
	return matches
}

// Contains reports whether a record with isbn exists.
func (c *Catalog) Contains(isbn string) bool {
	for _, b := range c.books {
		if b.ISBN == isbn {
			return true
		}
	}
	return false
}

// Insert adds b and re-sorts the catalog by title.
// The catalog is left untouched when the ISBN is already present.
func (c *Catalog) Insert(b Book) error {
	if c.Contains(b.ISBN) {
		return errors.NewDuplicateISBNError(b.ISBN)
	}
	c.books = append(c.books, b)
	c.sortByTitle()
	return nil
}

func (c *Catalog) sortByTitle() {
	sort.SliceStable(c.books, func(i, j int) bool {
		return strings.ToLower(c.books[i].Title) < strings.ToLower(c.books[j].Title)
	})
}
