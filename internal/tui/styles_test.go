package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/runoshun/taskboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStyles_StatusStyle(t *testing.T) {
	s := DefaultStyles()

	tests := []struct {
		status domain.Status
		want   lipgloss.TerminalColor
	}{
		{domain.StatusTodo, s.StatusTodo.GetForeground()},
		{domain.StatusInProgress, s.StatusInProgress.GetForeground()},
		{domain.StatusDone, s.StatusDone.GetForeground()},
		{domain.Status("Blocked"), s.StatusUnknown.GetForeground()},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, s.StatusStyle(tt.status).GetForeground())
		})
	}
}

func TestStyles_StatusColorsRender(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	s := DefaultStyles()

	todo := s.StatusStyle(domain.StatusTodo).Render("To Do")
	done := s.StatusStyle(domain.StatusDone).Render("Done")

	// Todo #FDCB6E, Done #00B894
	assert.Contains(t, todo, "38;2;253;203;110")
	assert.Contains(t, done, "38;2;0;184;148")
}
