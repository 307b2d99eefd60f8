package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Next(t *testing.T) {
	tests := []struct {
		name   string
		from   Status
		expect Status
	}{
		{"todo -> in progress", StatusTodo, StatusInProgress},
		{"in progress -> done", StatusInProgress, StatusDone},
		{"done -> todo", StatusDone, StatusTodo},
		{"unknown -> todo", Status("Blocked"), StatusTodo},
		{"empty -> todo", Status(""), StatusTodo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.Next()
			if got != tt.expect {
				t.Errorf("Status(%q).Next() = %q, want %q", tt.from, got, tt.expect)
			}
		})
	}
}

func TestStatus_Next_ThreeStepsReturnToStart(t *testing.T) {
	for _, s := range AllStatuses() {
		t.Run(string(s), func(t *testing.T) {
			assert.Equal(t, s, s.Next().Next().Next())
			assert.True(t, s.Next().IsValid(), "next must stay within the cycle")
		})
	}
}

func TestStatus_Glyph(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusTodo, "🟡"},
		{StatusInProgress, "🟠"},
		{StatusDone, "🟢"},
		{Status("Blocked"), ""},
		{Status(""), ""},
		{Status("to do"), ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Glyph())
		})
	}
}

func TestStatus_Glyph_DistinctForValidStatuses(t *testing.T) {
	seen := make(map[string]Status)
	for _, s := range AllStatuses() {
		glyph := s.Glyph()
		require.NotEmpty(t, glyph)
		_, dup := seen[glyph]
		assert.False(t, dup, "glyph %q reused", glyph)
		seen[glyph] = s
	}
}

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, Status("todo").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatus_Display(t *testing.T) {
	assert.Equal(t, "In Progress", StatusInProgress.Display())
	assert.Equal(t, "-", Status("").Display())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"To Do", StatusTodo, false},
		{"todo", StatusTodo, false},
		{"TODO", StatusTodo, false},
		{"to-do", StatusTodo, false},
		{"In Progress", StatusInProgress, false},
		{"in-progress", StatusInProgress, false},
		{"in_progress", StatusInProgress, false},
		{"doing", StatusInProgress, false},
		{" done ", StatusDone, false},
		{"Done", StatusDone, false},
		{"closed", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
