package tui

import "github.com/runoshun/taskboard/internal/domain"

// Msg is the sealed interface for all TUI messages.
// Every remote call reports back through exactly one Msg, and Update
// applies them one at a time in arrival order.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the task collection has been fetched.
type MsgTasksLoaded struct {
	Tasks []domain.Task
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskCreated is sent when the server has created a task.
type MsgTaskCreated struct {
	Task domain.Task
}

func (MsgTaskCreated) sealed() {}

// MsgTaskUpdated is sent when the server has changed a task's status.
type MsgTaskUpdated struct {
	Task domain.Task
}

func (MsgTaskUpdated) sealed() {}

// MsgTaskDeleted is sent when the server has deleted a task.
type MsgTaskDeleted struct {
	TaskID string
}

func (MsgTaskDeleted) sealed() {}

// MsgError is sent when a remote call fails.
type MsgError struct {
	Err error
	Op  Op
}

func (MsgError) sealed() {}

// Op identifies the remote call behind a message.
type Op int

const (
	OpList Op = iota
	OpCreate
	OpSetStatus
	OpDelete
)
