// Package errorlog appends rejected catalog lines and operations to an
// errors.log file kept next to the catalog.
package errorlog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lepinkainen/booktracker/internal/config"
	"github.com/lepinkainen/booktracker/internal/errors"
)

// Entry categories.
const (
	CategoryInvalidLine  = "INVALID LINE"
	CategoryInvalidInput = "INVALID INPUT"
)

const timestampFormat = "2006-01-02T15:04:05"

// Logger writes error entries for one catalog.
type Logger struct {
	path string
	now  func() time.Time
}

// New returns a Logger writing to the error log beside catalogPath.
func New(catalogPath string) *Logger {
	return NewWithClock(catalogPath, time.Now)
}

// NewWithClock is New with a custom clock.
func NewWithClock(catalogPath string, now func() time.Time) *Logger {
	if now == nil {
		now = time.Now
	}
	return &Logger{
		path: filepath.Join(filepath.Dir(catalogPath), config.ErrorLogName),
		now:  now,
	}
}

// Path returns the location of the log file.
func (l *Logger) Path() string {
	return l.path
}

// LogLine records a catalog line that failed validation.
func (l *Logger) LogLine(line string, err error) {
	l.write(CategoryInvalidLine, line, err)
}

// LogInput records a rejected command-line argument.
func (l *Logger) LogInput(input string, err error) {
	l.write(CategoryInvalidInput, input, err)
}

// FormatEntry renders a single log line, newline included.
func FormatEntry(at time.Time, category, related string, err error) string {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return fmt.Sprintf("[%s] %s: \"%s\" - %s: %s\n",
		at.Format(timestampFormat), category, related, errors.KindOf(err), message)
}

// write never fails the caller; a broken log only produces a console warning.
func (l *Logger) write(category, related string, err error) {
	entry := FormatEntry(l.now(), category, related, err)
	if werr := appendEntry(l.path, entry); werr != nil {
		slog.Warn("Unable to write to errors.log", "path", l.path, "error", werr)
		return
	}
	slog.Debug("Logged error", "category", category, "kind", errors.KindOf(err))
}

func appendEntry(path, entry string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = f.WriteString(entry)
	return err
}
