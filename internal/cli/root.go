// Package cli provides the command-line interface for taskboard.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for taskboard.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var apiURL string

	root := &cobra.Command{
		Use:   "taskboard",
		Short: "Terminal client for a REST task board",
		Long: `taskboard is a terminal client for a remote task collection.

Tasks move through To Do -> In Progress -> Done -> To Do.
Run without arguments to open the interactive board, or use the
subcommands below from scripts.

The task service URL is taken from --api-url, then TASKBOARD_API_URL,
then the config file, and defaults to http://localhost:5000.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			if apiURL != "" {
				if err := c.OverrideAPIURL(apiURL); err != nil {
					return err
				}
			}

			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			// Default: launch the board
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the task service (overrides config and TASKBOARD_API_URL)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Task management commands
	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	statusCmd := newStatusCommand(c)
	statusCmd.GroupID = groupTask

	nextCmd := newNextCommand(c)
	nextCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	// Add subcommands
	root.AddCommand(
		listCmd,
		addCmd,
		statusCmd,
		nextCmd,
		rmCmd,
		tuiCmd,
		configCmd,
	)

	return root
}

// launchTUI runs the interactive board until the user quits.
func launchTUI(c *app.Container) error {
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
