package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskboard/internal/app"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/testutil"
	"github.com/stretchr/testify/require"
)

func seedTasks() []domain.Task {
	return []domain.Task{
		{ID: "a", Title: "Write docs", Status: domain.StatusTodo},
		{ID: "b", Title: "Fix bug", Description: "crash on start", Status: domain.StatusInProgress},
		{ID: "c", Title: "Ship", Status: domain.StatusDone},
	}
}

// newTestModel creates a sized Model backed by api.
func newTestModel(t *testing.T, api *testutil.MockTaskAPI, cfg *domain.Config) *Model {
	t.Helper()
	m := New(app.NewWithDeps(cfg, api, nil))
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// newLoadedModel creates a Model and applies the initial list result.
func newLoadedModel(t *testing.T, api *testutil.MockTaskAPI) *Model {
	t.Helper()
	m := newTestModel(t, api, nil)
	run(t, m, m.Init())
	return m
}

// run executes cmd synchronously and feeds its message back into Update,
// as the bubbletea runtime would.
func run(t *testing.T, m *Model, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	m.Update(msg)
	return msg
}

// press sends a key press and returns the resulting command.
func press(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}
