// Package domain contains core business entities and interfaces.
package domain

import "encoding/json"

// Task is a single item of the remote task collection.
// The server owns every field; the client only mirrors what it returned.
type Task struct {
	ID          string `json:"id" yaml:"id"`                   // Server-assigned identifier
	Title       string `json:"title" yaml:"title"`             // Title (required)
	Description string `json:"description" yaml:"description"` // Description (optional)
	Status      Status `json:"status" yaml:"status"`           // Current status
}

// taskWire mirrors the JSON shape, accepting Mongo-style "_id" as well as "id".
type taskWire struct {
	ID          string `json:"id"`
	MongoID     string `json:"_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// UnmarshalJSON decodes a task, taking the identifier from "id" or, failing that, "_id".
func (t *Task) UnmarshalJSON(data []byte) error {
	var w taskWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	id := w.ID
	if id == "" {
		id = w.MongoID
	}
	*t = Task{
		ID:          id,
		Title:       w.Title,
		Description: w.Description,
		Status:      w.Status,
	}
	return nil
}

// NextStatus returns the status the task moves to when advanced.
func (t Task) NextStatus() Status {
	return t.Status.Next()
}

// NextActionLabel returns the label of the advance action, e.g. "Mark as Done".
func (t Task) NextActionLabel() string {
	return "Mark as " + string(t.NextStatus())
}

// NewTaskRequest is the body sent when creating a task.
type NewTaskRequest struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// StatusUpdateRequest is the body sent when changing a task's status.
type StatusUpdateRequest struct {
	Status Status `json:"status"`
}
