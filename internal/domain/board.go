package domain

import (
	"slices"
	"strings"
)

// Draft holds the pending new-task form fields.
type Draft struct {
	Title       string
	Description string
}

// IsBlank returns true if the title is empty after trimming whitespace.
func (d Draft) IsBlank() bool {
	return strings.TrimSpace(d.Title) == ""
}

// Board is the application view state: the mirrored task collection,
// the new-task draft and the active filter.
//
// Board is a value. Every method returns a new Board and leaves the
// receiver untouched, so a snapshot can be kept while a request is in flight.
type Board struct {
	Tasks  []Task
	Draft  Draft
	Filter Filter
}

// NewBoard returns the initial state: no tasks, empty draft, filter All.
func NewBoard() Board {
	return Board{Filter: FilterAll}
}

// WithTasks replaces the collection wholesale, as after a successful list.
func (b Board) WithTasks(tasks []Task) Board {
	b.Tasks = slices.Clone(tasks)
	return b
}

// WithCreated appends a task returned by the server and clears the draft.
func (b Board) WithCreated(t Task) Board {
	tasks := make([]Task, 0, len(b.Tasks)+1)
	tasks = append(tasks, b.Tasks...)
	b.Tasks = append(tasks, t)
	b.Draft = Draft{}
	return b
}

// WithUpdated replaces the task with the same id by the server's representation.
// If no task has that id (e.g. it was deleted meanwhile) the board is unchanged.
func (b Board) WithUpdated(t Task) Board {
	tasks := slices.Clone(b.Tasks)
	for i := range tasks {
		if tasks[i].ID == t.ID {
			tasks[i] = t
		}
	}
	b.Tasks = tasks
	return b
}

// WithoutTask removes the task with the given id.
func (b Board) WithoutTask(id string) Board {
	b.Tasks = slices.DeleteFunc(slices.Clone(b.Tasks), func(t Task) bool {
		return t.ID == id
	})
	return b
}

// WithDraft sets the pending form fields.
func (b Board) WithDraft(d Draft) Board {
	b.Draft = d
	return b
}

// WithFilter sets the active filter.
func (b Board) WithFilter(f Filter) Board {
	b.Filter = f
	return b
}

// Visible returns the tasks shown under the active filter.
func (b Board) Visible() []Task {
	f := b.Filter
	if f == "" {
		f = FilterAll
	}
	return FilterTasks(b.Tasks, f)
}

// Find returns the task with the given id.
func (b Board) Find(id string) (Task, bool) {
	for _, t := range b.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}
