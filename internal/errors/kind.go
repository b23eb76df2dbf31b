package errors

import (
	"errors"
	"io/fs"
)

// Kind names written to the error log.
const (
	KindMalformedEntry        = "MalformedEntry"
	KindInvalidISBN           = "InvalidISBN"
	KindDuplicateISBN         = "DuplicateISBN"
	KindInsufficientArguments = "InsufficientArguments"
	KindInvalidFileName       = "InvalidFileName"
	KindIO                    = "IOError"
	KindUnexpected            = "Unexpected"
)

// KindOf returns the short kind name for err, looking through wrapping.
func KindOf(err error) string {
	if err == nil {
		return KindUnexpected
	}
	switch {
	case IsMalformedEntryError(err):
		return KindMalformedEntry
	case IsInvalidISBNError(err):
		return KindInvalidISBN
	case IsDuplicateISBNError(err):
		return KindDuplicateISBN
	case IsInsufficientArgumentsError(err):
		return KindInsufficientArguments
	case IsInvalidFileNameError(err):
		return KindInvalidFileName
	case IsIOError(err):
		return KindIO
	}
	return KindUnexpected
}

// IsIOError reports whether err came from the filesystem.
func IsIOError(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr)
}
