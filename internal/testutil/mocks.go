// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/runoshun/taskboard/internal/domain"
)

// Ensure mocks implement their ports.
var (
	_ domain.TaskAPI       = (*MockTaskAPI)(nil)
	_ domain.Logger        = (*MockLogger)(nil)
	_ domain.ConfigLoader  = (*MockConfigLoader)(nil)
	_ domain.ConfigManager = (*MockConfigManager)(nil)
)

// MockTaskAPI is an in-memory test double for domain.TaskAPI.
// It behaves like the real service: ids are assigned on create, new tasks
// start as To Do, and unknown ids fail with a remote error.
// Fields are ordered to minimize memory padding.
type MockTaskAPI struct {
	ListErr      error
	CreateErr    error
	SetStatusErr error
	DeleteErr    error
	// CreateErrAt fails the Nth create call (1-based) when non-zero.
	CreateErrAt int

	Tasks   []domain.Task
	Created []domain.NewTaskRequest
	Calls   map[string]int
	mu      sync.Mutex
	NextIDN int
}

// NewMockTaskAPI creates a MockTaskAPI seeded with tasks.
func NewMockTaskAPI(tasks ...domain.Task) *MockTaskAPI {
	return &MockTaskAPI{
		Tasks:   slices.Clone(tasks),
		NextIDN: 1,
		Calls:   make(map[string]int),
	}
}

// CallCount returns how many times the named method ("List", "Create",
// "SetStatus", "Delete") was invoked.
func (m *MockTaskAPI) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[method]
}

// TotalCalls returns the number of requests issued across all methods.
func (m *MockTaskAPI) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.Calls {
		total += n
	}
	return total
}

func (m *MockTaskAPI) record(method string) int {
	if m.Calls == nil {
		m.Calls = make(map[string]int)
	}
	m.Calls[method]++
	return m.Calls[method]
}

func notFound(op, id string) error {
	return &domain.RemoteError{
		Op:         op,
		URL:        "/tasks/" + id,
		StatusCode: 404,
		Body:       `{"error":"Task not found"}`,
	}
}

// List returns a copy of the stored tasks.
func (m *MockTaskAPI) List(_ context.Context) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("List")
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	tasks := slices.Clone(m.Tasks)
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// Create stores a new task with a generated id and status To Do.
func (m *MockTaskAPI) Create(_ context.Context, req domain.NewTaskRequest) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.record("Create")
	if m.CreateErr != nil {
		return domain.Task{}, m.CreateErr
	}
	if m.CreateErrAt != 0 && n == m.CreateErrAt {
		return domain.Task{}, &domain.RemoteError{Op: "create task", StatusCode: 500}
	}
	m.Created = append(m.Created, req)
	task := domain.Task{
		ID:          fmt.Sprintf("id-%d", m.NextIDN),
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.StatusTodo,
	}
	m.NextIDN++
	m.Tasks = append(m.Tasks, task)
	return task, nil
}

// SetStatus updates the stored task's status.
func (m *MockTaskAPI) SetStatus(_ context.Context, id string, status domain.Status) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("SetStatus")
	if m.SetStatusErr != nil {
		return domain.Task{}, m.SetStatusErr
	}
	for i := range m.Tasks {
		if m.Tasks[i].ID == id {
			m.Tasks[i].Status = status
			return m.Tasks[i], nil
		}
	}
	return domain.Task{}, notFound("update task", id)
}

// Delete removes the stored task.
func (m *MockTaskAPI) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Delete")
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i := range m.Tasks {
		if m.Tasks[i].ID == id {
			m.Tasks = slices.Delete(m.Tasks, i, i+1)
			return nil
		}
	}
	return notFound("delete task", id)
}

// LogEntry is a message captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger records log entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) add(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

// ByLevel returns the entries recorded at level.
func (m *MockLogger) ByLevel(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config (defaults when nil).
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr    error
	Info       domain.ConfigInfo
	InitCalled bool
}

// GetConfigInfo returns the configured info.
func (m *MockConfigManager) GetConfigInfo() domain.ConfigInfo {
	return m.Info
}

// InitConfig records the call and returns InitErr.
func (m *MockConfigManager) InitConfig() error {
	m.InitCalled = true
	return m.InitErr
}
