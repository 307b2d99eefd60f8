package domain

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "http://localhost:5000", cfg.API.URL)
	assert.Zero(t, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, FilterAll, cfg.TUI.Filter)
	assert.True(t, cfg.TUI.ConfirmDelete)
}

func TestRenderConfigTemplate(t *testing.T) {
	cfg := NewDefaultConfig()

	content := RenderConfigTemplate(cfg, "/home/u/.config/taskboard")

	assert.Contains(t, content, `url = "http://localhost:5000"`)
	assert.Contains(t, content, `level = "info"`)
	assert.Contains(t, content, "/home/u/.config/taskboard/logs/taskboard.log")
	assert.Contains(t, content, "confirm_delete = true")

	// The rendered template must be valid TOML.
	var raw map[string]any
	require.NoError(t, toml.Unmarshal([]byte(content), &raw))
	assert.Contains(t, raw, "api")
	assert.Contains(t, raw, "tui")
}

func TestPaths(t *testing.T) {
	dir := AppDir("/cfg")
	assert.Equal(t, "/cfg/taskboard", dir)
	assert.Equal(t, "/cfg/taskboard/config.toml", ConfigPath(dir))
	assert.Equal(t, "/cfg/taskboard/logs/taskboard.log", LogPath(dir))
}
