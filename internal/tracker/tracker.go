// Package tracker runs one booktracker invocation: it validates the
// arguments, loads the catalog, performs the requested operation and
// always finishes with the statistics footer.
package tracker

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lepinkainen/booktracker/internal/catalog"
	"github.com/lepinkainen/booktracker/internal/errorlog"
	"github.com/lepinkainen/booktracker/internal/errors"
	"github.com/lepinkainen/booktracker/internal/fileutil"
	"github.com/lepinkainen/booktracker/internal/stats"
)

const (
	catalogExtension = ".txt"

	// related text used in the error log when nothing better exists
	relatedNoArguments = "NO ARGUMENTS"
	relatedIO          = "I/O"
	relatedUnknown     = "N/A"
)

// Options configures a single run.
type Options struct {
	// Args are the positional arguments: catalog file and operation.
	Args   []string
	Stdout io.Writer
	Stderr io.Writer
	// Now is the clock used for error log timestamps.
	Now func() time.Time
}

// loadCatalog is replaced in tests.
var loadCatalog = catalog.LoadFile

type run struct {
	opts  Options
	log   *errorlog.Logger
	stats stats.Stats
	// related is the text logged next to an unexpected failure.
	related string
}

// Run executes one invocation and returns its statistics. The footer is
// printed exactly once on every path, including a recovered panic.
func Run(opts Options) (result stats.Stats) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	r := &run{opts: opts, related: relatedUnknown}
	if len(opts.Args) >= 2 {
		r.related = opts.Args[1]
	}

	defer func() {
		if p := recover(); p != nil {
			slog.Debug("Recovered from panic", "panic", p)
			r.fail(fmt.Errorf("%v", p), r.related)
		}
		if err := r.stats.Write(opts.Stdout); err != nil {
			slog.Warn("Failed to write statistics", "error", err)
		}
		result = r.stats
	}()

	if err := r.execute(); err != nil {
		r.fail(err, r.relatedFor(err))
	}
	return r.stats
}

func (r *run) execute() error {
	args := r.opts.Args
	if len(args) < 2 {
		r.log = errorlog.NewWithClock(".", r.opts.Now)
		r.related = relatedNoArguments
		return errors.NewInsufficientArgumentsError("You must provide 2 arguments: <catalogFile.txt> <operation>")
	}

	catalogPath := args[0]
	r.log = errorlog.NewWithClock(catalogPath, r.opts.Now)
	if !strings.HasSuffix(catalogPath, catalogExtension) {
		r.related = catalogPath
		return errors.NewInvalidFileNameError(catalogPath, "Catalog file must end with .txt")
	}

	if err := fileutil.EnsureFile(catalogPath); err != nil {
		return err
	}

	cat, err := r.load(catalogPath)
	if err != nil {
		return err
	}

	op := strings.TrimSpace(args[1])
	r.related = op
	executor := &Executor{
		Catalog: cat,
		Path:    catalogPath,
		Log:     r.log,
		Out:     r.opts.Stdout,
		ErrOut:  r.opts.Stderr,
	}
	opStats, err := executor.Execute(op)
	r.stats = r.stats.Add(opStats)
	if err != nil {
		return err
	}

	publish(cat.Books())
	return nil
}

// load reads the catalog, logging and counting every rejected line.
func (r *run) load(path string) (*catalog.Catalog, error) {
	cat, invalid, err := loadCatalog(path)
	if err != nil {
		return nil, err
	}

	for _, lineErr := range invalid {
		r.log.LogLine(lineErr.Line, lineErr.Err)
	}
	r.stats = r.stats.Add(stats.Stats{ValidRecords: cat.Len(), Errors: len(invalid)})
	slog.Debug("Loaded catalog", "path", path, "valid", cat.Len(), "invalid", len(invalid))

	return cat, nil
}

func (r *run) relatedFor(err error) string {
	if errors.IsIOError(err) && !errors.IsCatalogError(err) {
		return relatedIO
	}
	return r.related
}

// fail reports an error that ended the run and counts it.
func (r *run) fail(err error, related string) {
	r.stats.Errors++

	switch {
	case errors.IsCatalogError(err), errors.IsUsageError(err):
		fmt.Fprintf(r.opts.Stderr, "Error: %s\n", err)
	case errors.IsIOError(err):
		fmt.Fprintf(r.opts.Stderr, "I/O Error: %s\n", err)
	default:
		fmt.Fprintf(r.opts.Stderr, "Unexpected error: %s\n", err)
	}

	if r.log != nil {
		r.log.LogInput(related, err)
	}
}
