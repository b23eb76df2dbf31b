package catalog

import (
	"bufio"
	"io"
	"os"
)

// Persist writes one catalog line per record to w.
func (c *Catalog) Persist(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, b := range c.books {
		if _, err := bw.WriteString(b.Line()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile replaces the contents of path with the catalog.
// The file is truncated first; records are never appended.
func (c *Catalog) WriteFile(path string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return c.Persist(f)
}
