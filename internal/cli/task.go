package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats for the list command.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status string
		Output string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display the task collection.

The table has columns: glyph, ID, STATUS, TITLE.
Use --status to show only tasks with that status.

Examples:
  # List all tasks
  taskboard list

  # List tasks in progress
  taskboard list --status in-progress

  # Machine-readable output
  taskboard list -o json
  taskboard list -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := domain.ParseFilter(opts.Status)
			if err != nil {
				return fmt.Errorf("%w: %q (use all, todo, in-progress or done)", err, opts.Status)
			}

			switch opts.Output {
			case formatTable, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown output format %q (use table, json or yaml)", opts.Output)
			}

			// Execute use case
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{Filter: filter})
			if err != nil {
				return err
			}

			// Print output
			w := cmd.OutOrStdout()
			switch opts.Output {
			case formatJSON:
				return printTasksJSON(w, out.Tasks)
			case formatYAML:
				return printTasksYAML(w, out.Tasks)
			default:
				printTaskTable(w, out.Tasks)
				_, _ = fmt.Fprintf(w, "\nshowing %d of %d tasks\n", len(out.Tasks), out.Total)
				return nil
			}
		},
	}

	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Show only tasks with this status (all, todo, in-progress, done)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", formatTable, "Output format: table, json, yaml")

	return cmd
}

// printTaskTable prints tasks as aligned columns.
// Widths are measured in terminal cells so glyphs and wide titles line up.
func printTaskTable(w io.Writer, tasks []domain.Task) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks.")
		return
	}

	idWidth := runewidth.StringWidth("ID")
	statusWidth := runewidth.StringWidth("STATUS")
	for _, t := range tasks {
		idWidth = max(idWidth, runewidth.StringWidth(t.ID))
		statusWidth = max(statusWidth, runewidth.StringWidth(t.Status.Display()))
	}

	// Glyphs occupy two cells; unknown statuses get blank padding.
	const glyphWidth = 2
	_, _ = fmt.Fprintf(w, "%s  %s  %s  %s\n",
		runewidth.FillRight("", glyphWidth),
		runewidth.FillRight("ID", idWidth),
		runewidth.FillRight("STATUS", statusWidth),
		"TITLE",
	)
	for _, t := range tasks {
		_, _ = fmt.Fprintf(w, "%s  %s  %s  %s\n",
			runewidth.FillRight(t.Status.Glyph(), glyphWidth),
			runewidth.FillRight(t.ID, idWidth),
			runewidth.FillRight(t.Status.Display(), statusWidth),
			t.Title,
		)
	}
}

// printTasksJSON prints tasks as an indented JSON array.
func printTasksJSON(w io.Writer, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return nil
}

// printTasksYAML prints tasks as a YAML sequence.
func printTasksYAML(w io.Writer, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tasks); err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return enc.Close()
}

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title string
		Body  string
		From  string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Create a new task.

The server assigns the ID and the initial status (To Do).
A title that is empty after trimming is rejected without contacting the server.

With --from, tasks are read from a YAML file ("-" for stdin):

  - title: Write docs
    description: README and examples
  - title: Release

Entries are created in order; the import stops at the first failure.

Examples:
  # Create a task
  taskboard add --title "Buy milk"

  # Create a task with a description
  taskboard add --title "Buy milk" --body "2 liters"

  # Create tasks from a file
  taskboard add --from tasks.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.From != "" {
				if cmd.Flags().Changed("title") || cmd.Flags().Changed("body") {
					return errors.New("--from cannot be combined with --title or --body")
				}
				return runImport(cmd, c, opts.From)
			}
			if !cmd.Flags().Changed("title") {
				return errors.New("--title or --from is required")
			}

			// Execute use case
			uc := c.NewTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.NewTaskInput{
				Title:       opts.Title,
				Description: opts.Body,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Task title")
	cmd.Flags().StringVarP(&opts.Body, "body", "b", "", "Task description")
	cmd.Flags().StringVarP(&opts.From, "from", "f", "", "Create tasks from a YAML file (\"-\" for stdin)")

	return cmd
}

// runImport creates tasks from a YAML file and reports what was created,
// including partial progress when the import fails.
func runImport(cmd *cobra.Command, c *app.Container, path string) error {
	var (
		content []byte
		err     error
	)
	if path == "-" {
		content, err = io.ReadAll(cmd.InOrStdin())
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read tasks file: %w", err)
	}

	uc := c.ImportTasksUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{Content: content})
	if out != nil {
		w := cmd.OutOrStdout()
		for _, t := range out.Created {
			_, _ = fmt.Fprintf(w, "Created task %s: %s\n", t.ID, t.Title)
		}
		if out.Skipped > 0 {
			_, _ = fmt.Fprintf(w, "Skipped %d entries with an empty title\n", out.Skipped)
		}
		_, _ = fmt.Fprintf(w, "Created %d task(s)\n", len(out.Created))
	}
	return err
}

// newStatusCommand creates the status command.
func newStatusCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Set the status of a task",
		Long: `Set the status of a task.

Accepted statuses (case-insensitive): todo, in-progress, done,
or the exact names "To Do", "In Progress", "Done".

Examples:
  taskboard status 65f1c2 done
  taskboard status 65f1c2 "In Progress"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseStatus(args[1])
			if err != nil {
				return fmt.Errorf("%w: %q (use todo, in-progress or done)", err, args[1])
			}

			// Execute use case
			uc := c.SetStatusUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SetStatusInput{
				TaskID: args[0],
				Status: status,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s: %s\n", out.Task.ID, statusLabel(out.Task.Status))
			return nil
		},
	}

	return cmd
}

// newNextCommand creates the next command.
func newNextCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next <id>",
		Short: "Advance a task to its next status",
		Long: `Advance a task one step: To Do -> In Progress -> Done -> To Do.

The current status is fetched from the server first.

Examples:
  taskboard next 65f1c2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Execute use case
			uc := c.AdvanceStatusUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AdvanceStatusInput{TaskID: args[0]})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s: %s -> %s\n",
				out.Task.ID, statusLabel(out.Previous), statusLabel(out.Task.Status))
			return nil
		},
	}

	return cmd
}

// newRmCommand creates the rm command for deleting tasks.
func newRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long: `Delete a task from the task service.

Examples:
  taskboard rm 65f1c2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Execute use case
			uc := c.DeleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: args[0]})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", out.TaskID)
			return nil
		},
	}

	return cmd
}

// statusLabel returns the status prefixed with its glyph when it has one.
func statusLabel(s domain.Status) string {
	return strings.TrimSpace(s.Glyph() + " " + s.Display())
}
