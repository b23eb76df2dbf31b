package tracker

import (
	"strings"

	"github.com/lepinkainen/booktracker/internal/catalog"
)

// Action is what an operation argument asks the tracker to do.
type Action int

const (
	// ActionTitleSearch searches titles for a keyword.
	ActionTitleSearch Action = iota
	// ActionISBNSearch looks up a single 13-digit ISBN.
	ActionISBNSearch
	// ActionInsert adds a title:author:isbn:copies record.
	ActionInsert
	// ActionMalformed is colon-separated input without four fields.
	ActionMalformed
)

func (a Action) String() string {
	switch a {
	case ActionISBNSearch:
		return "isbn-search"
	case ActionInsert:
		return "insert"
	case ActionMalformed:
		return "malformed"
	default:
		return "title-search"
	}
}

// Classify decides what op means. The checks run in a fixed order and
// the first match wins: ISBN, four-field record, other colon input, title.
func Classify(op string) Action {
	op = strings.TrimSpace(op)

	switch {
	case catalog.IsISBN13(op):
		return ActionISBNSearch
	case catalog.HasRecordShape(op):
		return ActionInsert
	case strings.Contains(op, catalog.FieldSeparator):
		return ActionMalformed
	default:
		return ActionTitleSearch
	}
}
