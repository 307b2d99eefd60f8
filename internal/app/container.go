// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"os"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/infra/config"
	"github.com/runoshun/taskboard/internal/infra/logging"
	"github.com/runoshun/taskboard/internal/infra/restapi"
	"github.com/runoshun/taskboard/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	API           domain.TaskAPI
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Effective configuration (file <- env <- flags)
	Config *domain.Config

	logFile *logging.Logger
	appDir  string
}

// New creates a new Container rooted at the given application directory
// (usually config.DefaultAppDir()). An empty appDir disables the config
// file and the log file.
func New(appDir string) (*Container, error) {
	configLoader := config.NewLoaderWithDir(appDir, os.Getenv)
	cfg, err := configLoader.Load()
	if err != nil {
		// A broken config file must not lock the user out of "config init/show".
		cfg = domain.NewDefaultConfig()
		cfg.Warnings = append(cfg.Warnings, err.Error()+" (using defaults)")
	}

	logPath := ""
	if appDir != "" {
		logPath = domain.LogPath(appDir)
	}
	logger := logging.New(logPath, logging.ParseLevel(cfg.Log.Level))

	client, err := restapi.New(cfg.API.URL, restapi.WithTimeout(cfg.API.Timeout))
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	return &Container{
		API:           client,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManagerWithDir(appDir),
		Logger:        logger,
		Config:        cfg,
		logFile:       logger,
		appDir:        appDir,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, api domain.TaskAPI, logger domain.Logger) *Container {
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		API:    api,
		Config: cfg,
		Logger: logger,
	}
}

// AppDir returns the application directory ("" when disabled).
func (c *Container) AppDir() string {
	return c.appDir
}

// OverrideAPIURL points the container at another task service.
// It is used for the --api-url flag, which outranks every other source.
func (c *Container) OverrideAPIURL(rawURL string) error {
	client, err := restapi.New(rawURL, restapi.WithTimeout(c.Config.API.Timeout))
	if err != nil {
		return fmt.Errorf("invalid --api-url: %w", err)
	}
	c.API = client
	c.Config.API.URL = client.BaseURL()
	c.Logger.Debug("config", "api url overridden by flag: "+c.Config.API.URL)
	return nil
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// UseCase factory methods

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.API, c.Logger)
}

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.API, c.Logger)
}

// SetStatusUseCase returns a new SetStatus use case.
func (c *Container) SetStatusUseCase() *usecase.SetStatus {
	return usecase.NewSetStatus(c.API, c.Logger)
}

// AdvanceStatusUseCase returns a new AdvanceStatus use case.
func (c *Container) AdvanceStatusUseCase() *usecase.AdvanceStatus {
	return usecase.NewAdvanceStatus(c.API, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.API, c.Logger)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.API, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.Config)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
