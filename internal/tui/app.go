package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
//
// All view state lives in board and changes only inside Update, so
// results of concurrent requests are applied one at a time onto the
// current board in the order they arrive.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State
	board domain.Board

	// Components
	keys       KeyMap
	styles     Styles
	help       help.Model
	titleInput textinput.Model
	descInput  textarea.Model
	listView   viewport.Model

	// Numeric state (smaller types last)
	confirmTaskID string
	mode          Mode
	width         int
	height        int
	cursor        int
	confirmDelete bool
	loading       bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200

	keys := DefaultKeyMap()

	di := textarea.New()
	di.Placeholder = "Task description (optional)"
	di.CharLimit = 1000
	di.ShowLineNumbers = false
	di.SetHeight(3)
	di.KeyMap.InsertNewline = keys.InsertNewline

	board := domain.NewBoard()
	confirmDelete := true
	if c != nil && c.Config != nil {
		if f, err := domain.ParseFilter(string(c.Config.TUI.Filter)); err == nil {
			board = board.WithFilter(f)
		}
		confirmDelete = c.Config.TUI.ConfirmDelete
	}

	return &Model{
		container:     c,
		board:         board,
		mode:          ModeNormal,
		keys:          keys,
		styles:        DefaultStyles(),
		help:          help.New(),
		titleInput:    ti,
		descInput:     di,
		listView:      viewport.New(0, 0),
		confirmDelete: confirmDelete,
		loading:       true,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// Board returns the current view state.
func (m *Model) Board() domain.Board {
	return m.board
}

// Err returns the error currently shown, if any.
func (m *Model) Err() error {
	return m.err
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// loadTasks returns a command that fetches the full collection.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Op: OpList, Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

// createTask returns a command that creates a task from the draft.
func (m *Model) createTask(draft domain.Draft) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.NewTaskUseCase().Execute(context.Background(), usecase.NewTaskInput{
			Title:       draft.Title,
			Description: draft.Description,
		})
		if err != nil {
			return MsgError{Op: OpCreate, Err: err}
		}
		return MsgTaskCreated{Task: out.Task}
	}
}

// setStatus returns a command that requests a status change.
func (m *Model) setStatus(id string, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.SetStatusUseCase().Execute(context.Background(), usecase.SetStatusInput{
			TaskID: id,
			Status: status,
		})
		if err != nil {
			return MsgError{Op: OpSetStatus, Err: err}
		}
		return MsgTaskUpdated{Task: out.Task}
	}
}

// deleteTask returns a command that deletes a task.
func (m *Model) deleteTask(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{
			TaskID: id,
		})
		if err != nil {
			return MsgError{Op: OpDelete, Err: err}
		}
		return MsgTaskDeleted{TaskID: out.TaskID}
	}
}

// SelectedTask returns the task under the cursor, or false if the visible list is empty.
func (m *Model) SelectedTask() (domain.Task, bool) {
	visible := m.board.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return domain.Task{}, false
	}
	return visible[m.cursor], true
}

// clampCursor keeps the cursor inside the visible list.
func (m *Model) clampCursor() {
	n := len(m.board.Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// syncDraft copies the form inputs into the board's draft.
func (m *Model) syncDraft() {
	m.board = m.board.WithDraft(domain.Draft{
		Title:       m.titleInput.Value(),
		Description: m.descInput.Value(),
	})
}
