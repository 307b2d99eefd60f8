package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		appDir := t.TempDir()
		configContent := "[log]\nlevel = \"debug\""
		writeConfig(t, appDir, configContent)

		info := NewManagerWithDir(appDir).GetConfigInfo()

		assert.Equal(t, filepath.Join(appDir, domain.ConfigFileName), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		appDir := t.TempDir()

		info := NewManagerWithDir(appDir).GetConfigInfo()

		assert.Equal(t, filepath.Join(appDir, domain.ConfigFileName), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})

	t.Run("returns empty info without app dir", func(t *testing.T) {
		info := NewManagerWithDir("").GetConfigInfo()

		assert.Equal(t, domain.ConfigInfo{}, info)
	})
}

func TestManager_InitConfig(t *testing.T) {
	t.Run("creates config file and directory", func(t *testing.T) {
		appDir := filepath.Join(t.TempDir(), "nested", domain.AppDirName)

		err := NewManagerWithDir(appDir).InitConfig()

		require.NoError(t, err)
		path := filepath.Join(appDir, domain.ConfigFileName)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "[api]")
		assert.Contains(t, string(content), domain.DefaultAPIURL)

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())
	})

	t.Run("returns error if file exists", func(t *testing.T) {
		appDir := t.TempDir()
		writeConfig(t, appDir, "existing")

		err := NewManagerWithDir(appDir).InitConfig()

		assert.ErrorIs(t, err, domain.ErrConfigExists)
		content, _ := os.ReadFile(filepath.Join(appDir, domain.ConfigFileName))
		assert.Equal(t, "existing", string(content))
	})

	t.Run("returns error without app dir", func(t *testing.T) {
		err := NewManagerWithDir("").InitConfig()

		assert.ErrorIs(t, err, domain.ErrNoConfigDir)
	})
}
