package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/remotetodo/internal/client"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFile, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, client.DefaultBaseURL, cfg.APIURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Zero(t, cfg.RequestTimeout)
}

func TestLoad_File(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvLogLevel, "")

	p := writeConfig(t, `
api_url: http://localhost:9000/api/v1/todos
log_level: debug
theme: neon
request_timeout: 5s
server:
  addr: ":9000"
  data_file: /tmp/todos.json
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/api/v1/todos", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "neon", cfg.Theme)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "/tmp/todos.json", cfg.Server.DataFile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeConfig(t, "api_url: http://localhost:9000/todos\n")
	t.Setenv(EnvAPIURL, "https://example.com/api/v1/todos")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/api/v1/todos", cfg.APIURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvLogLevel, "")

	p := writeConfig(t, "api_url: ftp://example.com\nlog_level: loud\ntheme: pink\n")

	_, err := Load(p)
	require.Error(t, err)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 3)
}

func TestLoad_BadYAML(t *testing.T) {
	p := writeConfig(t, "api_url: [\n")
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}
