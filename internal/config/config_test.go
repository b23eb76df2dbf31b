package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func restoreGlobals(t *testing.T) {
	origLog, origJSON, origVerbose := ErrorLogName, JSONOutput, Verbose
	t.Cleanup(func() {
		ErrorLogName, JSONOutput, Verbose = origLog, origJSON, origVerbose
		viper.Reset()
	})
	viper.Reset()
}

func TestInitConfigDefaults(t *testing.T) {
	restoreGlobals(t)

	InitConfig()

	assert.Equal(t, "errors.log", ErrorLogName)
	assert.Equal(t, "", JSONOutput)
	assert.False(t, Verbose)
	assert.False(t, viper.GetBool("datasette.enabled"))
	assert.Equal(t, "./booktracker.db", viper.GetString("datasette.dbfile"))
}

func TestInitConfigReadsViper(t *testing.T) {
	restoreGlobals(t)

	viper.Set("errorlog.filename", "failures.log")
	viper.Set("json.output", "out/catalog.json")
	viper.Set("verbose", true)

	InitConfig()

	assert.Equal(t, "failures.log", ErrorLogName)
	assert.Equal(t, "out/catalog.json", JSONOutput)
	assert.True(t, Verbose)
}

func TestInitConfigEmptyLogNameFallsBack(t *testing.T) {
	restoreGlobals(t)

	viper.Set("errorlog.filename", "")
	InitConfig()

	assert.Equal(t, "errors.log", ErrorLogName)
}

func TestSetters(t *testing.T) {
	restoreGlobals(t)

	testCases := []struct {
		name    string
		json    string
		verbose bool
	}{
		{name: "enabled", json: "catalog.json", verbose: true},
		{name: "disabled", json: "", verbose: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			SetJSONOutput(tc.json)
			SetVerbose(tc.verbose)

			assert.Equal(t, tc.json, JSONOutput)
			assert.Equal(t, tc.verbose, Verbose)
		})
	}
}
