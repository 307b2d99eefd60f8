package config

import (
	"os"

	"github.com/runoshun/taskboard/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages the configuration file.
type Manager struct {
	appDir string // Path to the application directory (e.g., ~/.config/taskboard)
}

// NewManager creates a new Manager using the default application directory.
func NewManager() *Manager {
	return &Manager{appDir: DefaultAppDir()}
}

// NewManagerWithDir creates a new Manager with a custom application directory.
// This is useful for testing.
func NewManagerWithDir(appDir string) *Manager {
	return &Manager{appDir: appDir}
}

// GetConfigInfo returns information about the config file.
func (m *Manager) GetConfigInfo() domain.ConfigInfo {
	if m.appDir == "" {
		return domain.ConfigInfo{}
	}
	path := domain.ConfigPath(m.appDir)
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitConfig creates the config file with the default template.
func (m *Manager) InitConfig() error {
	if m.appDir == "" {
		return domain.ErrNoConfigDir
	}
	path := domain.ConfigPath(m.appDir)

	// Check if file already exists
	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.appDir, 0o700); err != nil {
		return err
	}

	content := domain.RenderConfigTemplate(domain.NewDefaultConfig(), m.appDir)
	return os.WriteFile(path, []byte(content), 0o600)
}
