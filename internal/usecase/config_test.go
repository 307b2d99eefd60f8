package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowConfig_Execute(t *testing.T) {
	// Setup
	manager := &testutil.MockConfigManager{
		Info: domain.ConfigInfo{Path: "/cfg/config.toml", Content: "[api]", Exists: true},
	}
	effective := domain.NewDefaultConfig()
	effective.API.URL = "http://example.com"
	uc := NewShowConfig(manager, effective)

	// Execute
	out, err := uc.Execute(context.Background(), ShowConfigInput{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, manager.Info, out.File)
	assert.Equal(t, "http://example.com", out.Effective.API.URL)
}

func TestShowConfig_Execute_NilConfigUsesDefaults(t *testing.T) {
	uc := NewShowConfig(&testutil.MockConfigManager{}, nil)

	out, err := uc.Execute(context.Background(), ShowConfigInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAPIURL, out.Effective.API.URL)
}

func TestInitConfig_Execute(t *testing.T) {
	manager := &testutil.MockConfigManager{Info: domain.ConfigInfo{Path: "/cfg/config.toml"}}
	uc := NewInitConfig(manager)

	out, err := uc.Execute(context.Background(), InitConfigInput{})

	require.NoError(t, err)
	assert.True(t, manager.InitCalled)
	assert.Equal(t, "/cfg/config.toml", out.Path)
}

func TestInitConfig_Execute_AlreadyExists(t *testing.T) {
	manager := &testutil.MockConfigManager{InitErr: domain.ErrConfigExists}
	uc := NewInitConfig(manager)

	out, err := uc.Execute(context.Background(), InitConfigInput{})

	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
