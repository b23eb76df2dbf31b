package tracker

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lepinkainen/booktracker/internal/catalog"
	"github.com/lepinkainen/booktracker/internal/errorlog"
	"github.com/lepinkainen/booktracker/internal/errors"
	"github.com/lepinkainen/booktracker/internal/stats"
)

// Executor runs one classified operation against a loaded catalog.
type Executor struct {
	Catalog *catalog.Catalog
	// Path is where the catalog is rewritten after an insert.
	Path   string
	Log    *errorlog.Logger
	Out    io.Writer
	ErrOut io.Writer
}

// Execute performs op and returns what it counted.
//
// Invalid new records and duplicate inserts are handled here: printed,
// logged and counted. A returned error ends the run and has not been
// reported yet.
func (e *Executor) Execute(op string) (stats.Stats, error) {
	op = strings.TrimSpace(op)
	action := Classify(op)
	slog.Debug("Classified operation", "operation", op, "action", action.String())

	switch action {
	case ActionISBNSearch:
		return e.searchByISBN(op)
	case ActionInsert:
		return e.insert(op)
	case ActionMalformed:
		return e.reject(op, errors.NewMalformedEntryError("New book record must be: title:author:isbn:copies")), nil
	default:
		return e.searchByTitle(op), nil
	}
}

func (e *Executor) searchByISBN(isbn string) (stats.Stats, error) {
	matches, err := e.Catalog.SearchByISBN(isbn)
	if err != nil {
		return stats.Stats{}, err
	}

	writeTable(e.Out, matches)
	return stats.Stats{SearchResults: len(matches)}, nil
}

func (e *Executor) searchByTitle(keyword string) stats.Stats {
	matches := e.Catalog.SearchByTitle(keyword)
	writeTable(e.Out, matches)
	return stats.Stats{SearchResults: len(matches)}
}

func (e *Executor) insert(record string) (stats.Stats, error) {
	book, err := catalog.ParseLine(record)
	if err != nil {
		return e.reject(record, err), nil
	}

	if err := e.Catalog.Insert(book); err != nil {
		if errors.IsCatalogError(err) {
			return e.reject(record, err), nil
		}
		return stats.Stats{}, err
	}

	if err := e.Catalog.WriteFile(e.Path); err != nil {
		return stats.Stats{}, fmt.Errorf("failed to write catalog: %w", err)
	}
	slog.Debug("Catalog rewritten", "path", e.Path, "records", e.Catalog.Len())

	writeTable(e.Out, []catalog.Book{book})
	return stats.Stats{BooksAdded: 1}, nil
}

// reject reports a recoverable input error and counts it.
func (e *Executor) reject(input string, err error) stats.Stats {
	fmt.Fprintf(e.ErrOut, "Error: %s\n", err)
	e.Log.LogInput(input, err)
	return stats.Stats{Errors: 1}
}
