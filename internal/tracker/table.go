package tracker

import (
	"fmt"
	"io"
	"strings"

	"github.com/lepinkainen/booktracker/internal/catalog"
)

const (
	headerFormat = "%-30s %-20s %-15s %5s\n"
	rowFormat    = "%-30s %-20s %-15s %5d\n"
)

var headerRule = strings.Repeat("-", 74)

func writeHeader(w io.Writer) {
	fmt.Fprintf(w, headerFormat, "Title", "Author", "ISBN", "Copy")
	fmt.Fprintln(w, headerRule)
}

func writeBook(w io.Writer, b catalog.Book) {
	fmt.Fprintf(w, rowFormat, b.Title, b.Author, b.ISBN, b.Copies)
}

// writeTable prints the header followed by one row per book.
func writeTable(w io.Writer, books []catalog.Book) {
	writeHeader(w)
	for _, b := range books {
		writeBook(w, b)
	}
}
