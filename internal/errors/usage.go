package errors

import "errors"

// InsufficientArgumentsError is returned when the catalog path or the
// operation is missing from the command line.
type InsufficientArgumentsError struct {
	Message string
}

func (e *InsufficientArgumentsError) Error() string {
	return e.Message
}

// NewInsufficientArgumentsError creates a new InsufficientArgumentsError
func NewInsufficientArgumentsError(message string) *InsufficientArgumentsError {
	return &InsufficientArgumentsError{Message: message}
}

// IsInsufficientArgumentsError reports whether err is an InsufficientArgumentsError.
func IsInsufficientArgumentsError(err error) bool {
	var target *InsufficientArgumentsError
	return errors.As(err, &target)
}

// InvalidFileNameError is returned when the catalog path is not a .txt file.
type InvalidFileNameError struct {
	FileName string
	Message  string
}

func (e *InvalidFileNameError) Error() string {
	return e.Message
}

// NewInvalidFileNameError creates a new InvalidFileNameError for fileName
func NewInvalidFileNameError(fileName, message string) *InvalidFileNameError {
	return &InvalidFileNameError{FileName: fileName, Message: message}
}

// IsInvalidFileNameError reports whether err is an InvalidFileNameError.
func IsInvalidFileNameError(err error) bool {
	var target *InvalidFileNameError
	return errors.As(err, &target)
}

// IsUsageError reports whether err was caused by how the tool was invoked.
func IsUsageError(err error) bool {
	return IsInsufficientArgumentsError(err) || IsInvalidFileNameError(err)
}
