package domain

import "strings"

// Status represents the lifecycle state of a task.
// Values are the exact strings exchanged with the task API.
type Status string

const (
	StatusTodo       Status = "To Do"       // Created, not started
	StatusInProgress Status = "In Progress" // Being worked on
	StatusDone       Status = "Done"        // Finished
)

// AllStatuses returns all valid status values in cycle order.
func AllStatuses() []Status {
	return []Status{
		StatusTodo,
		StatusInProgress,
		StatusDone,
	}
}

// Next returns the status that follows s in the cycle.
// Flow: To Do → In Progress → Done → To Do
//
// The transition is total: any value outside the cycle restarts at To Do.
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusInProgress
	case StatusInProgress:
		return StatusDone
	default:
		return StatusTodo
	}
}

// Glyph returns the display emoji for the status.
// Unknown values yield an empty string.
func (s Status) Glyph() string {
	switch s {
	case StatusTodo:
		return "🟡"
	case StatusInProgress:
		return "🟠"
	case StatusDone:
		return "🟢"
	default:
		return ""
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	if s == "" {
		return "-"
	}
	return string(s)
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// ParseStatus converts user input into a Status.
// It accepts the wire strings as well as the short forms "todo",
// "in-progress"/"in_progress"/"doing" and "done", case-insensitively.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", " ", "-", " ").Replace(normalized)
	switch normalized {
	case "to do", "todo":
		return StatusTodo, nil
	case "in progress", "inprogress", "doing":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	}
	return "", ErrInvalidStatus
}
