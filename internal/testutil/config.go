package testutil

import (
	"testing"

	"github.com/lepinkainen/booktracker/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	ErrorLogName string
	JSONOutput   string
	Verbose      bool
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		ErrorLogName: config.ErrorLogName,
		JSONOutput:   config.JSONOutput,
		Verbose:      config.Verbose,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.ErrorLogName = state.ErrorLogName
	config.JSONOutput = state.JSONOutput
	config.Verbose = state.Verbose
}

// ResetConfig puts config and viper back to their defaults and restores
// the previous state when the test completes.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()
	config.ErrorLogName = config.DefaultErrorLogName
	config.JSONOutput = ""
	config.Verbose = false

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetTestConfigOption is a functional option for configuring test config.
type SetTestConfigOption func(*ConfigState)

// WithErrorLogName sets the error log file name.
func WithErrorLogName(name string) SetTestConfigOption {
	return func(s *ConfigState) {
		s.ErrorLogName = name
	}
}

// WithJSONOutput sets the JSON export path.
func WithJSONOutput(path string) SetTestConfigOption {
	return func(s *ConfigState) {
		s.JSONOutput = path
	}
}

// SetTestConfigWithOptions resets the configuration, applies opts and
// restores the previous state when the test completes.
func SetTestConfigWithOptions(t *testing.T, opts ...SetTestConfigOption) {
	t.Helper()

	ResetConfig(t)

	options := ConfigState{ErrorLogName: config.DefaultErrorLogName}
	for _, opt := range opts {
		opt(&options)
	}
	RestoreConfigState(options)
}

// SetViperValue sets a viper configuration value for the duration of the test.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
		// viper has no Unset, an unset key cannot be restored
	})
}

// SetupDatasetteDB enables the SQLite mirror with a database inside env
// and returns its path.
func SetupDatasetteDB(t *testing.T, env *TestEnv) string {
	t.Helper()

	dbPath := env.Path("test.db")
	SetViperValue(t, "datasette.enabled", true)
	SetViperValue(t, "datasette.dbfile", dbPath)
	return dbPath
}
