package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, settings string) string {
	t.Helper()
	folder := t.TempDir()
	path := filepath.Join(folder, "config.yaml")
	content := fmt.Sprintf("LOG_LEVEL: error\nJSON_PATH: %s\nDATABASE_DSN: %s\n%s",
		filepath.Join(folder, "games.json"), filepath.Join(folder, "games.db"), settings)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, config string, args ...string) string {
	t.Helper()
	out := &bytes.Buffer{}
	require.NoError(t, execute(append([]string{"--config", config}, args...), out))
	return out.String()
}

func testLibraryRoundTrip(t *testing.T, config string) {
	id := strings.TrimSpace(run(t, config, "add", "--title", "Celeste", "--platform", "Switch"))
	run(t, config, "add", "--title", "Baba Is You", "--platform", "switch ", "--status", "playing")
	run(t, config, "add", "--title", "Anno 1800", "--platform", "PC")
	assert.Equal(t, "3\n", run(t, config, "count"))

	listed := run(t, config, "list", "--size", "2")
	assert.Contains(t, listed, "Anno 1800")
	assert.Contains(t, listed, "Baba Is You")
	assert.NotContains(t, listed, "Celeste")
	assert.Contains(t, listed, "page 1 of 2 (3 games)")

	assert.Equal(t, "PC\nSwitch\n", run(t, config, "platforms"))

	run(t, config, "status", id, "completed")
	shown := run(t, config, "show", id)
	assert.Contains(t, shown, "Status:      Completed")
	assert.NotContains(t, shown, "Completed:   -")

	run(t, config, "update", id, "--description", "Strawberries")
	assert.Contains(t, run(t, config, "show", id), "Description: Strawberries")

	run(t, config, "remove", id)
	assert.Equal(t, "not found\n", run(t, config, "show", id))
	assert.Equal(t, "2\n", run(t, config, "count"))
}

func TestJSONLibraryRoundTrip(t *testing.T) {
	testLibraryRoundTrip(t, writeConfig(t, "STORE_BACKEND: json\nSEED_SOURCE: none\n"))
}

func TestSQLLibraryRoundTrip(t *testing.T) {
	testLibraryRoundTrip(t, writeConfig(t, "STORE_BACKEND: sql\nSEED_SOURCE: none\n"))
}

func TestSampleSeedOnFirstRun(t *testing.T) {
	config := writeConfig(t, "STORE_BACKEND: json\nSEED_SOURCE: sample\n")
	assert.Equal(t, "5\n", run(t, config, "count"))
	assert.Equal(t, "5\n", run(t, config, "count"))
}

func TestCSVSeedOnFirstRun(t *testing.T) {
	csvPath, err := filepath.Abs("../../internal/database/importer/testdata/games_data.csv")
	require.NoError(t, err)
	config := writeConfig(t, "STORE_BACKEND: sql\nSEED_SOURCE: csv\nSEED_CSV_PATH: "+csvPath+"\n")
	assert.Equal(t, "6\n", run(t, config, "count"))
	assert.Equal(t, "N/A\nPC\nPS4\nSwitch\n", run(t, config, "platforms"))
}

func TestInvalidArguments(t *testing.T) {
	config := writeConfig(t, "STORE_BACKEND: json\nSEED_SOURCE: none\n")
	out := &bytes.Buffer{}
	assert.Error(t, execute([]string{"--config", config, "show", "not-an-id"}, out))
	assert.Error(t, execute([]string{"--config", config, "add", "--title", "Hades", "--status", "beaten"}, out))
	assert.Error(t, execute([]string{"--config", config, "add", "--title", " "}, out))
	assert.Error(t, execute([]string{"--config", config, "list", "--page", "0"}, out))
}

func TestMissingConfigurationFile(t *testing.T) {
	err := execute([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "count"}, &bytes.Buffer{})
	assert.Error(t, err)
}
