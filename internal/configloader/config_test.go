package configloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"gameshelf.dev/shelf/internal/configloader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test default configuration loading
func TestLoadDefaultConfiguration(t *testing.T) {
	configuration, err := configloader.LoadConfiguration("unexistent", "")
	if err != nil {
		t.Fatal(err)
	}
	if configuration.LogLevel != "info" {
		t.Errorf("Default log level is \"%s\", not \"%s\"", configuration.LogLevel, "info")
	}
	assert.Equal(t, configloader.BackendSQL, configuration.StoreBackend)
	assert.Equal(t, configloader.SeedCSV, configuration.SeedSource)
	assert.Equal(t, "games.json", configuration.JSONPath)
	assert.Equal(t, "games_data.csv", configuration.SeedCSVPath)
	assert.Equal(t, 10, configuration.PageSize)
	assert.Empty(t, configuration.LogFile)
}

// Test environment variables configuration loading
func TestLoadEnvironmentVariablesConfiguration(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("STORE_BACKEND", "json")
	t.Setenv("PAGE_SIZE", "25")

	configuration, err := configloader.LoadConfiguration("unexistent", "")
	if err != nil {
		t.Fatal(err)
	}
	if configuration.LogLevel != "warn" {
		t.Errorf("Log level is \"%s\", not \"%s\"", configuration.LogLevel, "warn")
	}
	assert.Equal(t, configloader.BackendJSON, configuration.StoreBackend)
	assert.Equal(t, 25, configuration.PageSize)
}

func TestLoadConfigurationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("SEED_SOURCE: sample\nDATABASE_DSN: file:library.db\nLOG_FORMAT: json\n"), 0644))

	configuration, err := configloader.LoadConfiguration("unexistent", path)
	require.NoError(t, err)
	assert.Equal(t, configloader.SeedSample, configuration.SeedSource)
	assert.Equal(t, "file:library.db", configuration.DatabaseDSN)
	assert.Equal(t, "json", configuration.LogFormat)
}

func TestLoadMissingConfigurationFile(t *testing.T) {
	_, err := configloader.LoadConfiguration("unexistent", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	_, err := configloader.LoadConfiguration("unexistent", "")
	assert.ErrorContains(t, err, "unknown store backend")
}

func TestValidateSeedSource(t *testing.T) {
	config := configloader.Config{StoreBackend: configloader.BackendSQL, SeedSource: "ftp", PageSize: 1}
	assert.ErrorContains(t, config.Validate(), "unknown seed source")
	config.SeedSource = configloader.SeedNone
	assert.NoError(t, config.Validate())
	config.PageSize = 0
	assert.Error(t, config.Validate())
}
