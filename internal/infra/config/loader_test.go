package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, appDir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(appDir, domain.ConfigFileName), []byte(content), 0o600)
	require.NoError(t, err)
}

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestLoader_Load_Defaults(t *testing.T) {
	// Setup: no config file
	appDir := t.TempDir()

	// Execute
	cfg, err := NewLoaderWithDir(appDir, nil).Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAPIURL, cfg.API.URL)
	assert.Zero(t, cfg.API.Timeout)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, domain.FilterAll, cfg.TUI.Filter)
	assert.True(t, cfg.TUI.ConfirmDelete)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_FileValues(t *testing.T) {
	// Setup
	appDir := t.TempDir()
	writeConfig(t, appDir, `
[api]
url = "https://tasks.example.com/api"
timeout = "5s"

[log]
level = "debug"

[tui]
filter = "in-progress"
confirm_delete = false
`)

	// Execute
	cfg, err := NewLoaderWithDir(appDir, nil).Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://tasks.example.com/api", cfg.API.URL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, domain.FilterInProgress, cfg.TUI.Filter)
	assert.False(t, cfg.TUI.ConfirmDelete)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_EnvOverridesFile(t *testing.T) {
	// Setup
	appDir := t.TempDir()
	writeConfig(t, appDir, `
[api]
url = "http://from-file:5000"

[log]
level = "warn"
`)
	env := envOf(map[string]string{
		domain.EnvAPIURL:   "http://from-env:8080",
		domain.EnvLogLevel: "error",
	})

	// Execute
	cfg, err := NewLoaderWithDir(appDir, env).Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:8080", cfg.API.URL)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoader_Load_InvalidEnvKeepsFileValue(t *testing.T) {
	appDir := t.TempDir()
	writeConfig(t, appDir, "[api]\nurl = \"http://from-file:5000\"\n")
	env := envOf(map[string]string{
		domain.EnvAPIURL:   "not a url",
		domain.EnvLogLevel: "loud",
	})

	cfg, err := NewLoaderWithDir(appDir, env).Load()

	require.NoError(t, err)
	assert.Equal(t, "http://from-file:5000", cfg.API.URL)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
	assert.Len(t, cfg.Warnings, 2)
}

func TestLoader_Load_Warnings(t *testing.T) {
	// Setup: unknown keys and invalid values
	appDir := t.TempDir()
	writeConfig(t, appDir, `
color = "red"

[api]
url = "ftp://nope"
timeout = "soon"
retries = 3

[log]
level = "verbose"

[tui]
filter = "Archived"
confirm_delete = "yes"

[extra]
key = 1
`)

	// Execute
	cfg, err := NewLoaderWithDir(appDir, nil).Load()

	// Assert: invalid values fall back to defaults
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAPIURL, cfg.API.URL)
	assert.Zero(t, cfg.API.Timeout)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, domain.FilterAll, cfg.TUI.Filter)
	assert.True(t, cfg.TUI.ConfirmDelete)

	assert.Contains(t, cfg.Warnings, "unknown section: color")
	assert.Contains(t, cfg.Warnings, "unknown section: extra")
	assert.Contains(t, cfg.Warnings, "unknown key in [api]: retries")
	assert.Contains(t, cfg.Warnings, `invalid value for [api].timeout: "soon"`)
	assert.Contains(t, cfg.Warnings, "invalid value for [log].level: verbose")
	assert.Contains(t, cfg.Warnings, "invalid value for [tui].filter: Archived")
	assert.Contains(t, cfg.Warnings, "invalid value for [tui].confirm_delete: expected bool")
	assert.Len(t, cfg.Warnings, 8)
}

func TestLoader_Load_MalformedTOML(t *testing.T) {
	appDir := t.TempDir()
	writeConfig(t, appDir, "[api\nurl = ")

	_, err := NewLoaderWithDir(appDir, nil).Load()

	assert.Error(t, err)
}

func TestLoader_Load_EmptyAppDir(t *testing.T) {
	env := envOf(map[string]string{domain.EnvAPIURL: "http://env:1"})

	cfg, err := NewLoaderWithDir("", env).Load()

	require.NoError(t, err)
	assert.Equal(t, "http://env:1", cfg.API.URL)
}

func TestLoader_Load_TemplateRoundTrip(t *testing.T) {
	// The file written by InitConfig must load without warnings.
	appDir := t.TempDir()
	require.NoError(t, NewManagerWithDir(appDir).InitConfig())

	cfg, err := NewLoaderWithDir(appDir, nil).Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Warnings)
	assert.Equal(t, domain.NewDefaultConfig().API, cfg.API)
}

func TestDefaultAppDir_UsesXDGConfigHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	assert.Equal(t, filepath.Join(home, domain.AppDirName), DefaultAppDir())
}
