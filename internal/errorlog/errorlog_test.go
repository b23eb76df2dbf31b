package errorlog

import (
	stdErrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lepinkainen/booktracker/internal/errors"
	"github.com/lepinkainen/booktracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 3, 14, 9, 26, 5, 358979323, time.UTC)

func fixedClock() time.Time { return fixedTime }

func TestFormatEntry(t *testing.T) {
	testCases := []struct {
		name     string
		category string
		related  string
		err      error
		expected string
	}{
		{
			name:     "invalid line",
			category: CategoryInvalidLine,
			related:  "::123:1",
			err:      errors.NewMalformedEntryError("Title cannot be empty."),
			expected: "[2026-03-14T09:26:05] INVALID LINE: \"::123:1\" - MalformedEntry: Title cannot be empty.\n",
		},
		{
			name:     "duplicate input",
			category: CategoryInvalidInput,
			related:  "Hobbit:Tolkien:9780618260300:5",
			err:      errors.NewDuplicateISBNError("9780618260300"),
			expected: "[2026-03-14T09:26:05] INVALID INPUT: \"Hobbit:Tolkien:9780618260300:5\" - DuplicateISBN: ISBN already exists\n",
		},
		{
			name:     "unexpected error",
			category: CategoryInvalidInput,
			related:  "N/A",
			err:      stdErrors.New("boom"),
			expected: "[2026-03-14T09:26:05] INVALID INPUT: \"N/A\" - Unexpected: boom\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatEntry(fixedTime, tc.category, tc.related, tc.err))
		})
	}
}

func TestLoggerAppends(t *testing.T) {
	testutil.ResetConfig(t)
	env := testutil.NewTestEnv(t)
	env.MkdirAll("data")

	logger := NewWithClock(env.Path("data", "books.txt"), fixedClock)
	assert.Equal(t, env.Path("data", "errors.log"), logger.Path())

	logger.LogLine("a:b:c", errors.NewMalformedEntryError("Book entry must contain exactly 4 fields separated by ':'."))
	logger.LogInput("x:y", errors.NewMalformedEntryError("New book record must be: title:author:isbn:copies"))

	content := env.ReadFileString("data/errors.log")
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "[2026-03-14T09:26:05] INVALID LINE: \"a:b:c\" - MalformedEntry: "))
	assert.True(t, strings.HasPrefix(lines[1], "[2026-03-14T09:26:05] INVALID INPUT: \"x:y\" - MalformedEntry: "))
}

func TestLoggerKeepsExistingEntries(t *testing.T) {
	testutil.ResetConfig(t)
	env := testutil.NewTestEnv(t)
	env.WriteFileString("errors.log", "earlier entry\n")

	logger := NewWithClock(env.Path("books.txt"), fixedClock)
	logger.LogInput("op", errors.NewInvalidISBNError("ISBN must contain exactly 13 digits."))

	content := env.ReadFileString("errors.log")
	assert.True(t, strings.HasPrefix(content, "earlier entry\n[2026-03-14T09:26:05] INVALID INPUT"))
}

func TestLoggerUsesConfiguredName(t *testing.T) {
	testutil.SetTestConfigWithOptions(t, testutil.WithErrorLogName("rejects.log"))
	env := testutil.NewTestEnv(t)

	logger := New(env.Path("books.txt"))
	assert.Equal(t, env.Path("rejects.log"), logger.Path())
}

func TestLoggerWriteFailureIsSwallowed(t *testing.T) {
	testutil.ResetConfig(t)
	env := testutil.NewTestEnv(t)

	// A directory where the log file should be makes every write fail.
	env.MkdirAll("errors.log")

	logger := NewWithClock(env.Path("books.txt"), fixedClock)
	assert.NotPanics(t, func() {
		logger.LogInput("op", errors.NewInvalidISBNError("bad"))
	})

	info, err := os.Stat(filepath.Join(env.RootDir(), "errors.log"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
