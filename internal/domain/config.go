package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string  `toml:"-"`
	API      APIConfig `toml:"api"`
	Log      LogConfig `toml:"log"`
	TUI      TUIConfig `toml:"tui"`
}

// APIConfig holds settings for the task service from [api] section.
type APIConfig struct {
	URL     string        `toml:"url,omitempty"`     // Base URL of the task service
	Timeout time.Duration `toml:"timeout,omitempty"` // Request timeout (0 = transport default)
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// TUIConfig holds board settings from [tui] section.
type TUIConfig struct {
	Filter        Filter `toml:"filter,omitempty"`         // Initial status filter
	ConfirmDelete bool   `toml:"confirm_delete,omitempty"` // Ask before deleting
}

// Default configuration values.
const (
	DefaultAPIURL   = "http://localhost:5000"
	DefaultLogLevel = "info"
)

// Environment variables consulted by the config loader.
const (
	EnvAPIURL   = "TASKBOARD_API_URL"
	EnvLogLevel = "TASKBOARD_LOG_LEVEL"
)

// Directory and file names for taskboard.
const (
	AppDirName     = "taskboard"     // Directory name under the config home
	ConfigFileName = "config.toml"   // Config file name
	LogFileName    = "taskboard.log" // Log file name
)

// AppDir returns the application directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func AppDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// ConfigPath returns the config file path inside the application directory.
func ConfigPath(appDir string) string {
	return filepath.Join(appDir, ConfigFileName)
}

// LogPath returns the log file path inside the application directory.
func LogPath(appDir string) string {
	return filepath.Join(appDir, "logs", LogFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			URL: DefaultAPIURL,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		TUI: TUIConfig{
			Filter:        FilterAll,
			ConfirmDelete: true,
		},
	}
}

// templateData holds all data for rendering the config template.
type templateData struct {
	APIURL        string
	LogLevel      string
	LogPath       string
	Filter        Filter
	ConfirmDelete bool
}

// RenderConfigTemplate renders the commented config template from the given Config.
// appDir is used to show where logs are written.
func RenderConfigTemplate(cfg *Config, appDir string) string {
	data := templateData{
		APIURL:        cfg.API.URL,
		LogLevel:      cfg.Log.Level,
		LogPath:       LogPath(appDir),
		Filter:        cfg.TUI.Filter,
		ConfirmDelete: cfg.TUI.ConfirmDelete,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
