package config

import (
	"github.com/spf13/viper"
)

// Defaults for the configuration keys.
const (
	DefaultErrorLogName = "errors.log"
	DefaultDatasetteDB  = "./booktracker.db"
)

// Global configuration variables
var (
	// ErrorLogName is the file name of the append-only error log kept next to the catalog
	ErrorLogName = DefaultErrorLogName
	// JSONOutput is the path the final catalog is exported to; empty disables the export
	JSONOutput string
	// Verbose enables debug logging
	Verbose bool
)

// SetDefaults registers the default values for every configuration key
func SetDefaults() {
	viper.SetDefault("errorlog.filename", DefaultErrorLogName)
	viper.SetDefault("json.output", "")
	viper.SetDefault("verbose", false)

	// Datasette defaults
	viper.SetDefault("datasette.enabled", false)
	viper.SetDefault("datasette.dbfile", DefaultDatasetteDB)
	viper.SetDefault("datasette.url", "")
	viper.SetDefault("datasette.token", "")
}

// InitConfig initializes the global configuration
func InitConfig() {
	SetDefaults()

	// Get values from viper
	ErrorLogName = viper.GetString("errorlog.filename")
	if ErrorLogName == "" {
		ErrorLogName = DefaultErrorLogName
	}
	JSONOutput = viper.GetString("json.output")
	Verbose = viper.GetBool("verbose")
}

// SetJSONOutput sets the JSON export path
func SetJSONOutput(path string) {
	JSONOutput = path
}

// SetVerbose sets the Verbose flag
func SetVerbose(verbose bool) {
	Verbose = verbose
}
