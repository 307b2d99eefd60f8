package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/runoshun/taskboard/internal/domain"
)

// Column widths of a task row, in terminal cells.
const (
	glyphWidth  = 2
	statusWidth = 11 // len("In Progress")
	actionWidth = 19 // len("Mark as In Progress")
	minTitle    = 10

	minListHeight = 3
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeInputTitle, ModeInputDesc, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the board: header, filter bar, task list and any dialog.
func (m *Model) viewMain() string {
	var b strings.Builder

	// Header
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewFilterBar())
	b.WriteString("\n\n")

	// Error message (if any)
	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	dialog := m.viewDialog()
	b.WriteString(m.viewTaskList())
	if dialog != "" {
		b.WriteString("\n")
		b.WriteString(dialog)
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// rowWidth returns the usable width inside the app padding.
func (m *Model) rowWidth() int {
	w := m.width - 6
	if w < 40 {
		w = 40
	}
	return w
}

// viewDialog renders the overlay for the current mode, or "" when there is none.
func (m *Model) viewDialog() string {
	switch m.mode {
	case ModeConfirm:
		return m.viewConfirmDialog()
	case ModeInputTitle:
		return m.viewTitleInput()
	case ModeInputDesc:
		return m.viewDescInput()
	case ModeNormal, ModeHelp:
		// No overlay for these modes
	}
	return ""
}

// listHeight returns how many lines the task list may use after the
// header, filter bar, error line, dialog and footer are laid out.
func (m *Model) listHeight(dialog string) int {
	reserved := 2 + 1 + 2 + 2 + 2 // app padding, header, filter bar, footer, margins
	if m.err != nil {
		reserved += 2
	}
	if dialog != "" {
		reserved += lipgloss.Height(dialog) + 1
	}
	h := m.height - reserved
	if h < minListHeight {
		h = minListHeight
	}
	return h
}

// viewHeader renders the header with "Tasks" and the task count.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Tasks")

	countText := fmt.Sprintf("showing %d of %d tasks", len(m.board.Visible()), len(m.board.Tasks))
	rightText := m.styles.HeaderCount.Render(countText)

	spacing := m.rowWidth() - lipgloss.Width(title) - lipgloss.Width(rightText)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewFilterBar renders one button per filter with the active one highlighted.
func (m *Model) viewFilterBar() string {
	buttons := make([]string, 0, len(domain.AllFilters()))
	for i, f := range domain.AllFilters() {
		label := fmt.Sprintf("%d %s", i+1, f.Label())
		if f == m.board.Filter {
			buttons = append(buttons, m.styles.FilterActive.Render(label))
		} else {
			buttons = append(buttons, m.styles.FilterInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

// viewTaskList renders the visible tasks through the list viewport.
func (m *Model) viewTaskList() string {
	if m.loading && len(m.board.Tasks) == 0 {
		return m.styles.Footer.Render("  Loading tasks...") + "\n"
	}
	if len(m.board.Visible()) == 0 {
		return m.viewEmptyState()
	}
	return m.styles.TaskList.Render(m.listView.View()) + "\n"
}

// syncListView renders the visible rows into the list viewport and
// scrolls it so the cursor row stays in view.
func (m *Model) syncListView() {
	tasks := m.board.Visible()
	rowWidth := m.rowWidth()
	height := m.listHeight(m.viewDialog())
	lines := make([]string, 0, len(tasks)*2)
	cursorTop, cursorBottom := 0, 0

	for i, task := range tasks {
		selected := i == m.cursor
		line := m.renderTaskItem(task, selected)

		if selected {
			cursorTop = len(lines)
			// Apply subtle background for full row width
			line = m.styles.TaskSelected.Width(rowWidth).Render(line)
		}
		lines = append(lines, line)

		if task.Description != "" {
			desc := truncate.StringWithTail(firstLine(task.Description), uint(rowWidth-5), "…")
			lines = append(lines, m.styles.TaskDesc.Render("     "+desc))
		}
		if selected {
			cursorBottom = len(lines) - 1
		}
	}

	m.listView.Width = rowWidth
	m.listView.Height = height
	m.listView.SetContent(strings.Join(lines, "\n"))
	if cursorTop < m.listView.YOffset {
		m.listView.SetYOffset(cursorTop)
	} else if cursorBottom >= m.listView.YOffset+height {
		m.listView.SetYOffset(cursorBottom - height + 1)
	}
}

// viewEmptyState renders a friendly empty state message.
func (m *Model) viewEmptyState() string {
	var b strings.Builder
	b.WriteString("\n")
	if len(m.board.Tasks) > 0 {
		b.WriteString(m.styles.Footer.Render("  No tasks match the filter "))
		b.WriteString(m.styles.FooterKey.Render(string(m.board.Filter)))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(m.styles.Footer.Render("  No tasks yet\n\n"))
	b.WriteString(m.styles.Footer.Render("  Press "))
	b.WriteString(m.styles.FooterKey.Render("n"))
	b.WriteString(m.styles.Footer.Render(" to create your first task"))
	b.WriteString("\n")
	return b.String()
}

// renderTaskItem renders a single task row.
// Format: "> 🟠 Fix login bug      In Progress  Mark as Done"
func (m *Model) renderTaskItem(task domain.Task, selected bool) string {
	indicator := " "
	if selected {
		indicator = m.styles.CursorSelected.Render(">")
	}

	glyph := runewidth.FillRight(task.Status.Glyph(), glyphWidth)

	titleWidth := m.rowWidth() - (1 + 1 + glyphWidth + 1 + 2 + statusWidth + 2 + actionWidth)
	if titleWidth < minTitle {
		titleWidth = minTitle
	}
	title := runewidth.FillRight(clip(task.Title, titleWidth), titleWidth)
	status := runewidth.FillRight(task.Status.Display(), statusWidth)
	action := task.NextActionLabel()

	var titlePart, actionPart string
	if selected {
		titlePart = m.styles.TaskTitleSelected.Render(title)
		actionPart = m.styles.ActionSelected.Render(action)
	} else {
		titlePart = m.styles.TaskTitle.Render(title)
		actionPart = m.styles.Action.Render(action)
	}
	statusPart := m.styles.StatusStyle(task.Status).Render(status)

	return fmt.Sprintf("%s %s %s  %s  %s", indicator, glyph, titlePart, statusPart, actionPart)
}

// viewConfirmDialog renders the delete confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	target := m.confirmTaskID
	if task, ok := m.board.Find(m.confirmTaskID); ok {
		target = fmt.Sprintf("%q", clip(task.Title, 40))
	}

	title := m.styles.DialogTitle.Foreground(Colors.Error).Render("Delete task " + target + "?")
	prompt := m.styles.DialogPrompt.Render("This action cannot be undone.")

	yesBtn := m.styles.HelpKey.Render("[ y ] Confirm")
	noBtn := m.styles.Footer.Render("[ n ] Cancel")
	buttons := lipgloss.JoinHorizontal(lipgloss.Left, yesBtn, "  ", noBtn)

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", prompt, "", buttons)
	return m.styles.Dialog.BorderForeground(Colors.Error).Render(content)
}

// viewTitleInput renders the title input dialog.
func (m *Model) viewTitleInput() string {
	title := m.styles.DialogTitle.Render("◆ New Task")
	stepInfo := m.styles.Footer.Render("Step 1 of 2")
	label := m.styles.InputPrompt.Render("Title")
	input := m.titleInput.View()
	hint := m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" next  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" cancel")

	content := lipgloss.JoinVertical(lipgloss.Left, title, stepInfo, "", label, input, "", hint)
	return m.styles.Dialog.Render(content)
}

// viewDescInput renders the description input dialog.
func (m *Model) viewDescInput() string {
	title := m.styles.DialogTitle.Render("◆ New Task")
	stepInfo := m.styles.Footer.Render("Step 2 of 2")
	titleLabel := m.styles.Footer.Render("Title: ") + m.styles.TaskTitle.Render(m.titleInput.Value())
	label := m.styles.InputPrompt.Render("Description (optional)")
	input := m.descInput.View()
	hint := m.styles.FooterKey.Render("enter") + m.styles.Footer.Render(" create  ") +
		m.styles.FooterKey.Render("alt+enter") + m.styles.Footer.Render(" newline  ") +
		m.styles.FooterKey.Render("esc") + m.styles.Footer.Render(" back")

	content := lipgloss.JoinVertical(lipgloss.Left, title, stepInfo, "", titleLabel, "", label, input, "", hint)
	return m.styles.Dialog.Render(content)
}

// viewFooter renders the footer with key hints.
func (m *Model) viewFooter() string {
	switch m.mode {
	case ModeNormal:
		return m.help.ShortHelpView(m.keys.ShortHelp())
	case ModeInputTitle, ModeInputDesc, ModeConfirm, ModeHelp:
		// Hints are shown in the dialogs themselves
		return ""
	}
	return ""
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")
	content := m.help.FullHelpView(m.keys.FullHelp())
	hint := m.styles.Footer.Render("Press ? or esc to close")

	return m.styles.Dialog.
		BorderForeground(Colors.Primary).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", content, "", hint))
}

// clip shortens s to at most width cells, marking the cut with an ellipsis.
func clip(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

// firstLine returns s up to its first newline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
