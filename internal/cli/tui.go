package cli

import (
	"github.com/runoshun/taskboard/internal/app"
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command for launching the interactive board.
// This is the same as running `taskboard` without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive board",
		Long:  `Launch the interactive terminal board for managing tasks.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
	return cmd
}
