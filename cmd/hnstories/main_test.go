package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

const offlineConfig = `
default_query = "Re"

[source]
kind = "static"

[store]
backend = "memory"

[log]
file = ""
`

func TestList_Offline(t *testing.T) {
	path := writeConfig(t, offlineConfig)

	out, _, err := execute(t, "--config", path, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "React")
	assert.Contains(t, out, "Redux")
	assert.Contains(t, out, "Jordan Walke")
	assert.Contains(t, out, "https://redux.js.org/")
}

func TestList_QueryArgument(t *testing.T) {
	path := writeConfig(t, offlineConfig)

	out, _, err := execute(t, "--config", path, "list", "redux")
	require.NoError(t, err)
	assert.Contains(t, out, "Redux")
	assert.NotContains(t, out, "React")
}

func TestList_NoMatch(t *testing.T) {
	path := writeConfig(t, offlineConfig)

	out, _, err := execute(t, "--config", path, "list", "rust")
	require.NoError(t, err)
	assert.Equal(t, "No stories match\n", out)
}

func TestList_RemembersQueryInFileStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
default_query = "Re"

[source]
kind = "static"

[store]
backend = "file"
path = "state.toml"

[log]
file = "hnstories.log"
level = "debug"
`), 0644))

	_, _, err := execute(t, "--config", path, "list", "Redux")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "state.toml"))
	assert.FileExists(t, filepath.Join(dir, "hnstories.log"))

	out, _, err := execute(t, "--config", path, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Redux")
	assert.NotContains(t, out, "React")
}

func TestList_FailedSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	path := writeConfig(t, `
[source]
kind = "algolia"
endpoint = "`+srv.URL+`"

[store]
backend = "memory"

[log]
file = ""
`)

	out, _, err := execute(t, "--config", path, "list", "React")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errSearchFailed))
	assert.Empty(t, out)
}

func TestList_OfflineFlagOverridesSource(t *testing.T) {
	path := writeConfig(t, `
[source]
kind = "algolia"
endpoint = "http://127.0.0.1:1"

[store]
backend = "memory"

[log]
file = ""
`)

	out, _, err := execute(t, "--config", path, "--offline", "list", "React")
	require.NoError(t, err)
	assert.Contains(t, out, "React")
}

func TestList_BadConfigFallsBackToDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := writeConfig(t, `[source]
kind = "carrier-pigeon"
`)

	_, errOut, err := execute(t, "--config", path, "--offline", "--store", "memory", "list", "React")
	require.NoError(t, err)
	assert.Contains(t, errOut, "using defaults")
}

func TestList_FirstRunWritesDefaultConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := execute(t, "--config", path, "--offline", "--store", "memory", "list", "React")
	require.NoError(t, err)
	assert.Contains(t, out, "React")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_query")
	assert.NotContains(t, string(data), "memory", "flag overrides stay out of the file")
}

func TestList_BadConfigIsNotOverwritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	body := "[source]\nkind = \"carrier-pigeon\"\n"
	path := writeConfig(t, body)

	_, _, err := execute(t, "--config", path, "--offline", "--store", "memory", "list", "React")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, string(data))
}

func TestList_UnknownStoreBackend(t *testing.T) {
	path := writeConfig(t, offlineConfig)

	_, _, err := execute(t, "--config", path, "--store", "floppy", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floppy")
}

func TestRoot_Help(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage")
	assert.Contains(t, out, "--offline")
	assert.Contains(t, out, "list")
}
