package domain

import "strings"

// Filter selects which tasks are rendered.
// It is a pure view transform and never touches the task collection.
type Filter string

const (
	FilterAll        Filter = "All"
	FilterTodo       Filter = Filter(StatusTodo)
	FilterInProgress Filter = Filter(StatusInProgress)
	FilterDone       Filter = Filter(StatusDone)
)

// AllFilters returns the filters in the order they are offered to the user.
func AllFilters() []Filter {
	return []Filter{FilterAll, FilterTodo, FilterInProgress, FilterDone}
}

// Show reports whether the task is visible under this filter.
func (f Filter) Show(t Task) bool {
	return f == FilterAll || Status(f) == t.Status
}

// Next returns the filter after f, wrapping from Done back to All.
func (f Filter) Next() Filter {
	filters := AllFilters()
	for i, candidate := range filters {
		if candidate == f {
			return filters[(i+1)%len(filters)]
		}
	}
	return FilterAll
}

// Label returns the filter button text, e.g. "🟠 In Progress".
func (f Filter) Label() string {
	glyph := Status(f).Glyph()
	if glyph == "" {
		return string(f)
	}
	return glyph + " " + string(f)
}

// ParseFilter converts user input into a Filter.
// "all" (or empty) selects every task; anything else must parse as a status.
func ParseFilter(s string) (Filter, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, string(FilterAll)) {
		return FilterAll, nil
	}
	status, err := ParseStatus(trimmed)
	if err != nil {
		return "", ErrInvalidFilter
	}
	return Filter(status), nil
}

// FilterTasks returns the tasks visible under f, preserving order.
func FilterTasks(tasks []Task, f Filter) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Show(t) {
			result = append(result, t)
		}
	}
	return result
}
