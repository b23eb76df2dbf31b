package errors

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"os"
	"testing"
)

func TestMalformedEntryError(t *testing.T) {
	err := NewMalformedEntryError("Title cannot be empty.")

	if err.Error() != "Title cannot be empty." {
		t.Fatalf("Error message = %q, want %q", err.Error(), "Title cannot be empty.")
	}

	if !IsMalformedEntryError(err) {
		t.Fatalf("IsMalformedEntryError returned false for MalformedEntryError")
	}

	wrapped := fmt.Errorf("parse line: %w", err)
	if !IsMalformedEntryError(wrapped) {
		t.Fatalf("IsMalformedEntryError returned false for wrapped MalformedEntryError")
	}
	if !IsCatalogError(wrapped) {
		t.Fatalf("IsCatalogError returned false for wrapped MalformedEntryError")
	}
}

func TestInvalidISBNError(t *testing.T) {
	err := NewInvalidISBNError("ISBN must contain exactly 13 digits.")

	if !IsInvalidISBNError(stdErrors.Join(err)) {
		t.Fatalf("IsInvalidISBNError returned false for joined InvalidISBNError")
	}
	if IsMalformedEntryError(err) {
		t.Fatalf("IsMalformedEntryError returned true for InvalidISBNError")
	}
}

func TestDuplicateISBNError(t *testing.T) {
	err := NewDuplicateISBNError("9780618260300")
	if err.Error() != "ISBN already exists" {
		t.Fatalf("Error message = %q, want %q", err.Error(), "ISBN already exists")
	}
	if err.ISBN != "9780618260300" {
		t.Fatalf("ISBN = %q, want 9780618260300", err.ISBN)
	}

	ambiguous := NewAmbiguousISBNError("9780441013593")
	expected := "More than one book found with ISBN: 9780441013593"
	if ambiguous.Error() != expected {
		t.Fatalf("Error message = %q, want %q", ambiguous.Error(), expected)
	}
	if !IsDuplicateISBNError(ambiguous) {
		t.Fatalf("IsDuplicateISBNError returned false for ambiguous lookup error")
	}
}

func TestUsageErrors(t *testing.T) {
	args := NewInsufficientArgumentsError("missing")
	name := NewInvalidFileNameError("books.csv", "Catalog file must end with .txt")

	for _, err := range []error{args, name} {
		if !IsUsageError(err) {
			t.Fatalf("IsUsageError returned false for %T", err)
		}
		if IsCatalogError(err) {
			t.Fatalf("IsCatalogError returned true for %T", err)
		}
	}

	if name.FileName != "books.csv" {
		t.Fatalf("FileName = %q, want books.csv", name.FileName)
	}
}

func TestKindOf(t *testing.T) {
	_, statErr := os.Stat("/definitely/not/here.txt")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "malformed", err: NewMalformedEntryError("x"), want: KindMalformedEntry},
		{name: "invalid isbn", err: NewInvalidISBNError("x"), want: KindInvalidISBN},
		{name: "duplicate isbn", err: NewDuplicateISBNError("1"), want: KindDuplicateISBN},
		{name: "wrapped duplicate", err: fmt.Errorf("insert: %w", NewDuplicateISBNError("1")), want: KindDuplicateISBN},
		{name: "insufficient arguments", err: NewInsufficientArgumentsError("x"), want: KindInsufficientArguments},
		{name: "invalid file name", err: NewInvalidFileNameError("a", "x"), want: KindInvalidFileName},
		{name: "path error", err: statErr, want: KindIO},
		{name: "wrapped path error", err: fmt.Errorf("load: %w", &fs.PathError{Op: "open", Path: "a", Err: fs.ErrPermission}), want: KindIO},
		{name: "plain error", err: stdErrors.New("boom"), want: KindUnexpected},
		{name: "nil", err: nil, want: KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Fatalf("KindOf() = %q, want %q", got, tt.want)
			}
		})
	}
}
