package cmd

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/booktracker/internal/config"
	"github.com/lepinkainen/booktracker/internal/tracker"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"
)

const envPrefix = "BOOKTRACKER"

var runTracker = tracker.Run

// CLI represents the command line of the booktracker application
type CLI struct {
	// Args are kept as a single optional list so the tracker can report a
	// missing catalog or operation itself. Everything after the catalog is
	// passed through, so an operation starting with "-" is not read as a flag.
	Args []string `arg:"" optional:"" passthrough:"" name:"catalog-and-operation" help:"Catalog file (.txt) followed by an ISBN, a title keyword or a title:author:isbn:copies record"`

	Verbose    bool   `short:"v" help:"Enable debug logging"`
	JSONOutput string `help:"Write the final catalog to this JSON file"`

	// Datasette flags
	Datasette    bool   `help:"Mirror the final catalog to a SQLite database"`
	DatasetteDB  string `help:"Path to SQLite database file"`
	DatasetteURL string `help:"Remote Datasette base URL (uses the insert API instead of a local database)"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging(slog.LevelInfo)
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("booktracker"),
		kong.Description("Search and extend a colon-separated book catalog."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)
	if config.Verbose {
		initLogging(slog.LevelDebug)
	}

	if err := ctx.Run(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	config.SetDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	if err := viper.BindEnv("datasette.token", envPrefix+"_DATASETTE_TOKEN"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "booktracker"))
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
		slog.Debug("No config file found, using defaults")
	} else {
		slog.Debug("Using config file", "file", viper.ConfigFileUsed())
	}

	config.InitConfig()
}

// updateGlobalConfig lets flags override config file and environment
// values. Unset flags leave the configured value alone.
func updateGlobalConfig(cli *CLI) {
	if cli.Verbose {
		config.SetVerbose(true)
	}
	if cli.JSONOutput != "" {
		config.SetJSONOutput(cli.JSONOutput)
	}

	if cli.Datasette {
		viper.Set("datasette.enabled", true)
	}
	if cli.DatasetteDB != "" {
		viper.Set("datasette.dbfile", cli.DatasetteDB)
	}
	if cli.DatasetteURL != "" {
		viper.Set("datasette.enabled", true)
		viper.Set("datasette.url", cli.DatasetteURL)
	}
}

// Run performs one tracker invocation. Anticipated failures are reported by
// the tracker itself and never fail the command.
func (c *CLI) Run() error {
	s := runTracker(tracker.Options{
		Args:   c.Args,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	slog.Debug("Run finished",
		"valid", s.ValidRecords,
		"results", s.SearchResults,
		"added", s.BooksAdded,
		"errors", s.Errors,
	)
	return nil
}

func initLogging(level slog.Level) {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
