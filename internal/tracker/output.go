package tracker

import (
	"log/slog"

	"github.com/lepinkainen/booktracker/internal/catalog"
	"github.com/lepinkainen/booktracker/internal/cmdutil"
	"github.com/lepinkainen/booktracker/internal/config"
	"github.com/lepinkainen/booktracker/internal/fileutil"
)

const catalogBooksSchema = `CREATE TABLE IF NOT EXISTS catalog_books (
		isbn TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		copies INTEGER NOT NULL
	)`

// publish mirrors the final catalog to the optional outputs. Failures are
// logged and never affect the run statistics.
func publish(books []catalog.Book) {
	writeCatalogToJSONIfEnabled(books, config.JSONOutput)

	if err := writeCatalogToDatasetteIfEnabled(books); err != nil {
		slog.Error("Error writing catalog to datastore", "error", err)
	}
}

func writeCatalogToJSONIfEnabled(books []catalog.Book, jsonOutput string) {
	if jsonOutput == "" {
		return
	}

	if _, err := fileutil.WriteJSONFile(books, jsonOutput, true); err != nil {
		slog.Error("Error writing catalog to JSON", "error", err)
	}
}

func writeCatalogToDatasetteIfEnabled(books []catalog.Book) error {
	return cmdutil.WriteToDatastore(books, catalogBooksSchema, "catalog_books", "catalog books", bookToMap)
}

func bookToMap(b catalog.Book) map[string]any {
	return cmdutil.StructToMap(b, cmdutil.StructToMapOptions{})
}
