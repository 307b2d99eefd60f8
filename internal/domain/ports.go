package domain

import "context"

// TaskAPI is the remote task collection.
// Each method performs exactly one request and never retries.
type TaskAPI interface {
	// List fetches the full current collection.
	List(ctx context.Context) ([]Task, error)

	// Create creates a task. The server assigns the id and default status.
	Create(ctx context.Context, req NewTaskRequest) (Task, error)

	// SetStatus changes the status of a task and returns the full updated record.
	SetStatus(ctx context.Context, id string, status Status) (Task, error)

	// Delete removes a task by ID.
	Delete(ctx context.Context, id string) error
}

// Logger writes diagnostic messages.
// Category groups related messages (e.g. "remote", "config").
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards every message.
type NopLogger struct{}

func (NopLogger) Debug(_, _ string) {}
func (NopLogger) Info(_, _ string)  {}
func (NopLogger) Warn(_, _ string)  {}
func (NopLogger) Error(_, _ string) {}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the effective configuration (defaults <- file <- environment).
	Load() (*Config, error)
}

// ConfigManager manages the configuration file.
type ConfigManager interface {
	// GetConfigInfo returns information about the config file.
	GetConfigInfo() ConfigInfo

	// InitConfig writes the default template. Returns ErrConfigExists if present.
	InitConfig() error
}

// ConfigInfo contains information about a config file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}
