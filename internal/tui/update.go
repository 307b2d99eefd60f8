package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskboard/internal/domain"
)

// Update handles messages and updates the model.
// The list viewport is resynced afterwards so View only reads state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	m.syncListView()
	return model, cmd
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgTasksLoaded:
		m.loading = false
		m.board = m.board.WithTasks(msg.Tasks)
		m.clampCursor()
		return m, nil

	case MsgTaskCreated:
		m.board = m.board.WithCreated(msg.Task)
		m.titleInput.Reset()
		m.descInput.Reset()
		return m, nil

	case MsgTaskUpdated:
		m.board = m.board.WithUpdated(msg.Task)
		m.clampCursor()
		return m, nil

	case MsgTaskDeleted:
		m.board = m.board.WithoutTask(msg.TaskID)
		m.clampCursor()
		return m, nil

	case MsgError:
		// State is left as it was; the error stays visible until the next key press.
		if msg.Op == OpList {
			m.loading = false
		}
		m.err = msg.Err
		return m, nil
	}

	return m, nil
}

// updateLayoutSizes sizes the form inputs to the window.
func (m *Model) updateLayoutSizes() {
	width := min(m.width-12, 72)
	if width < 20 {
		width = 20
	}
	m.titleInput.Width = width
	m.descInput.SetWidth(width)
}

// handleKeyMsg dispatches a key press to the current mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear error on any key press
	if m.err != nil {
		m.err = nil
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeInputTitle:
		return m.handleInputTitleMode(msg)
	case ModeInputDesc:
		return m.handleInputDescMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.board.Visible())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.mode = ModeInputTitle
		m.titleInput.SetValue(m.board.Draft.Title)
		m.descInput.SetValue(m.board.Draft.Description)
		m.descInput.Blur()
		return m, m.titleInput.Focus()

	case key.Matches(msg, m.keys.Advance):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		return m, m.setStatus(task.ID, task.NextStatus())

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		if !m.confirmDelete {
			return m, m.deleteTask(task.ID)
		}
		m.mode = ModeConfirm
		m.confirmTaskID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.NextFilter):
		m.setFilter(m.board.Filter.Next())
		return m, nil

	case key.Matches(msg, m.keys.PickFilter):
		filters := domain.AllFilters()
		idx := int(msg.String()[0] - '1')
		if idx >= 0 && idx < len(filters) {
			m.setFilter(filters[idx])
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// setFilter changes the active filter and resets the cursor to the top.
func (m *Model) setFilter(f domain.Filter) {
	m.board = m.board.WithFilter(f)
	m.cursor = 0
}

// handleInputTitleMode handles keys in title input mode.
// The draft survives esc so the form can be reopened where it was left.
func (m *Model) handleInputTitleMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.titleInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.board.Draft.IsBlank() {
			return m, nil
		}
		m.mode = ModeInputDesc
		m.titleInput.Blur()
		return m, m.descInput.Focus()
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	m.syncDraft()
	return m, cmd
}

// handleInputDescMode handles keys in description input mode.
func (m *Model) handleInputDescMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeInputTitle
		m.descInput.Blur()
		return m, m.titleInput.Focus()

	case key.Matches(msg, m.keys.Submit):
		draft := m.board.Draft
		if draft.IsBlank() {
			return m, nil
		}
		m.mode = ModeNormal
		m.descInput.Blur()
		return m, m.createTask(draft)
	}

	var cmd tea.Cmd
	m.descInput, cmd = m.descInput.Update(msg)
	m.syncDraft()
	return m, cmd
}

// handleConfirmMode handles keys in the delete confirmation dialog.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = ModeNormal
		m.confirmTaskID = ""
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		id := m.confirmTaskID
		m.mode = ModeNormal
		m.confirmTaskID = ""
		return m, m.deleteTask(id)
	}

	return m, nil
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
	}
	return m, nil
}
