// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/infra/logging"
	"github.com/runoshun/taskboard/internal/infra/restapi"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from the TOML file and the environment.
type Loader struct {
	getenv func(string) string
	appDir string // Path to the application directory (e.g., ~/.config/taskboard)
}

// NewLoader creates a new Loader using the default application directory.
func NewLoader() *Loader {
	return &Loader{
		appDir: DefaultAppDir(),
		getenv: os.Getenv,
	}
}

// NewLoaderWithDir creates a new Loader with a custom application directory
// and environment lookup. This is useful for testing.
func NewLoaderWithDir(appDir string, getenv func(string) string) *Loader {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	return &Loader{
		appDir: appDir,
		getenv: getenv,
	}
}

// DefaultAppDir returns the default application directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultAppDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.AppDir(configHome)
}

// AppDir returns the application directory the loader reads from.
func (l *Loader) AppDir() string {
	return l.appDir
}

// Load returns the effective configuration.
// Precedence: default <- config file <- environment.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	if l.appDir != "" {
		raw, err := l.loadFile(domain.ConfigPath(l.appDir))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if raw != nil {
			applyRaw(cfg, raw)
		}
	}

	l.applyEnv(cfg)

	sort.Strings(cfg.Warnings)
	return cfg, nil
}

// loadFile reads and decodes a config file into a raw map.
func (l *Loader) loadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return raw, nil
}

// applyEnv overrides file values with environment variables.
func (l *Loader) applyEnv(cfg *domain.Config) {
	if v := strings.TrimSpace(l.getenv(domain.EnvAPIURL)); v != "" {
		if _, err := restapi.ParseBaseURL(v); err != nil {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid %s: %v", domain.EnvAPIURL, err))
		} else {
			cfg.API.URL = v
		}
	}
	if v := strings.TrimSpace(l.getenv(domain.EnvLogLevel)); v != "" {
		if logging.IsValidLevel(v) {
			cfg.Log.Level = v
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid %s: %q", domain.EnvLogLevel, v))
		}
	}
}

// applyRaw copies recognized keys from the raw map into cfg and collects warnings.
// Invalid values keep the current value.
func applyRaw(cfg *domain.Config, raw map[string]any) {
	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		switch section {
		case "api":
			for k, v := range m {
				switch k {
				case "url":
					s, ok := v.(string)
					if !ok {
						cfg.Warnings = append(cfg.Warnings, "invalid value for [api].url: expected string")
						continue
					}
					if _, err := restapi.ParseBaseURL(s); err != nil {
						cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid value for [api].url: %v", err))
						continue
					}
					cfg.API.URL = s
				case "timeout":
					s, ok := v.(string)
					if !ok {
						cfg.Warnings = append(cfg.Warnings, "invalid value for [api].timeout: expected duration string")
						continue
					}
					d, err := time.ParseDuration(s)
					if err != nil || d < 0 {
						cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid value for [api].timeout: %q", s))
						continue
					}
					cfg.API.Timeout = d
				default:
					cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key in [api]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					s, ok := v.(string)
					if !ok || !logging.IsValidLevel(s) {
						cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid value for [log].level: %v", v))
						continue
					}
					cfg.Log.Level = s
				default:
					cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "tui":
			for k, v := range m {
				switch k {
				case "filter":
					s, ok := v.(string)
					f, err := domain.ParseFilter(s)
					if !ok || err != nil {
						cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid value for [tui].filter: %v", v))
						continue
					}
					cfg.TUI.Filter = f
				case "confirm_delete":
					b, ok := v.(bool)
					if !ok {
						cfg.Warnings = append(cfg.Warnings, "invalid value for [tui].confirm_delete: expected bool")
						continue
					}
					cfg.TUI.ConfirmDelete = b
				default:
					cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown key in [tui]: %s", k))
				}
			}
		default:
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}
}
