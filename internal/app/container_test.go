package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/infra/restapi"
	"github.com/runoshun/taskboard/internal/testutil"
	"github.com/runoshun/taskboard/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	// Setup
	t.Setenv(domain.EnvAPIURL, "")
	t.Setenv(domain.EnvLogLevel, "")
	appDir := t.TempDir()

	// Execute
	c, err := New(appDir)

	// Assert
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	assert.Equal(t, domain.DefaultAPIURL, c.Config.API.URL)
	client, ok := c.API.(*restapi.Client)
	require.True(t, ok)
	assert.Equal(t, domain.DefaultAPIURL, client.BaseURL())
	assert.Equal(t, appDir, c.AppDir())
	assert.NotNil(t, c.ConfigLoader)
	assert.NotNil(t, c.ConfigManager)
}

func TestNew_ReadsConfigFile(t *testing.T) {
	t.Setenv(domain.EnvAPIURL, "")
	appDir := t.TempDir()
	content := "[api]\nurl = \"http://tasks.internal:9000\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(appDir, domain.ConfigFileName), []byte(content), 0o600))

	c, err := New(appDir)

	require.NoError(t, err)
	assert.Equal(t, "http://tasks.internal:9000", c.Config.API.URL)
}

func TestNew_MalformedConfigFallsBackToDefaults(t *testing.T) {
	t.Setenv(domain.EnvAPIURL, "")
	appDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(appDir, domain.ConfigFileName), []byte("[api"), 0o600))

	c, err := New(appDir)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAPIURL, c.Config.API.URL)
	require.Len(t, c.Config.Warnings, 1)
	assert.Contains(t, c.Config.Warnings[0], "using defaults")
}

func TestNew_LogsToAppDir(t *testing.T) {
	t.Setenv(domain.EnvLogLevel, "debug")
	appDir := t.TempDir()
	c, err := New(appDir)
	require.NoError(t, err)

	c.Logger.Info("test", "hello")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(domain.LogPath(appDir))
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] [test] hello")
}

func TestContainer_OverrideAPIURL(t *testing.T) {
	c := NewWithDeps(nil, testutil.NewMockTaskAPI(), nil)

	err := c.OverrideAPIURL("http://flag:1234")

	require.NoError(t, err)
	assert.Equal(t, "http://flag:1234", c.Config.API.URL)
	_, ok := c.API.(*restapi.Client)
	assert.True(t, ok)
}

func TestContainer_OverrideAPIURL_Invalid(t *testing.T) {
	api := testutil.NewMockTaskAPI()
	c := NewWithDeps(nil, api, nil)

	err := c.OverrideAPIURL("not-a-url")

	assert.Error(t, err)
	assert.Same(t, api, c.API)
	assert.Equal(t, domain.DefaultAPIURL, c.Config.API.URL)
}

func TestNewWithDeps_UseCasesShareAPI(t *testing.T) {
	api := testutil.NewMockTaskAPI(domain.Task{ID: "1", Title: "T", Status: domain.StatusTodo})
	c := NewWithDeps(nil, api, nil)

	_, err := c.AdvanceStatusUseCase().Execute(context.Background(), usecase.AdvanceStatusInput{TaskID: "1"})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, api.Tasks[0].Status)
}
