package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LineError is a catalog line that failed validation during a load.
type LineError struct {
	Line string
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("invalid line %q: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// Load reads every line from r. Blank lines are ignored and invalid lines
// are returned as LineErrors without stopping the load; only a read
// failure is returned as an error.
func Load(r io.Reader) (*Catalog, []LineError, error) {
	c := New()
	var invalid []LineError

	// lines may be arbitrarily long
	reader := bufio.NewReader(r)
	for {
		raw, readErr := reader.ReadString('\n')
		if line := strings.TrimSpace(raw); line != "" {
			book, err := ParseLine(line)
			if err != nil {
				invalid = append(invalid, LineError{Line: line, Err: err})
			} else {
				c.books = append(c.books, book)
			}
		}

		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, nil, fmt.Errorf("failed to read catalog: %w", readErr)
		}
	}

	return c, invalid, nil
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string) (*Catalog, []LineError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}
