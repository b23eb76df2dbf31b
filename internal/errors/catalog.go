package errors

import (
	"errors"
	"fmt"
)

// MalformedEntryError reports a record with the wrong shape: wrong field
// count, an empty title or author, or an unusable copy count.
type MalformedEntryError struct {
	Message string
}

func (e *MalformedEntryError) Error() string {
	return e.Message
}

// NewMalformedEntryError creates a new MalformedEntryError with the given message
func NewMalformedEntryError(message string) *MalformedEntryError {
	return &MalformedEntryError{Message: message}
}

// IsMalformedEntryError reports whether err is a MalformedEntryError (even when wrapped).
func IsMalformedEntryError(err error) bool {
	var target *MalformedEntryError
	return errors.As(err, &target)
}

// InvalidISBNError reports an ISBN that is not exactly 13 ASCII digits.
type InvalidISBNError struct {
	Message string
}

func (e *InvalidISBNError) Error() string {
	return e.Message
}

// NewInvalidISBNError creates a new InvalidISBNError with the given message
func NewInvalidISBNError(message string) *InvalidISBNError {
	return &InvalidISBNError{Message: message}
}

// IsInvalidISBNError reports whether err is an InvalidISBNError (even when wrapped).
func IsInvalidISBNError(err error) bool {
	var target *InvalidISBNError
	return errors.As(err, &target)
}

// DuplicateISBNError reports an ISBN that appears more than once, either
// on insert or when a lookup finds several records.
type DuplicateISBNError struct {
	ISBN    string
	Message string
}

func (e *DuplicateISBNError) Error() string {
	return e.Message
}

// NewDuplicateISBNError is returned when an insert collides with an existing record.
func NewDuplicateISBNError(isbn string) *DuplicateISBNError {
	return &DuplicateISBNError{ISBN: isbn, Message: "ISBN already exists"}
}

// NewAmbiguousISBNError is returned when a lookup finds more than one record.
func NewAmbiguousISBNError(isbn string) *DuplicateISBNError {
	return &DuplicateISBNError{
		ISBN:    isbn,
		Message: fmt.Sprintf("More than one book found with ISBN: %s", isbn),
	}
}

// IsDuplicateISBNError reports whether err is a DuplicateISBNError (even when wrapped).
func IsDuplicateISBNError(err error) bool {
	var target *DuplicateISBNError
	return errors.As(err, &target)
}

// IsCatalogError reports whether err belongs to the record/catalog error family.
func IsCatalogError(err error) bool {
	return IsMalformedEntryError(err) || IsInvalidISBNError(err) || IsDuplicateISBNError(err)
}
