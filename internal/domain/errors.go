package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrRemote        = errors.New("remote call failed")
	ErrTaskNotFound  = errors.New("task not found")
	ErrEmptyTaskID   = errors.New("task id cannot be empty")
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrInvalidStatus = errors.New("invalid status")
	ErrInvalidFilter = errors.New("invalid filter")
	ErrConfigExists  = errors.New("config file already exists")
	ErrNoConfigDir   = errors.New("config directory not available")
)

// RemoteError describes a failed exchange with the task API.
// Every cause (transport failure, non-success status, malformed body)
// matches ErrRemote via errors.Is.
// Fields are ordered to minimize memory padding.
type RemoteError struct {
	Err        error  // Underlying cause
	Op         string // Operation name, e.g. "list tasks"
	Method     string // HTTP method
	URL        string // Request URL
	RequestID  string // X-Request-ID sent with the request
	Body       string // Response body excerpt for non-success statuses
	StatusCode int    // HTTP status code (0 if no response)
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", e.Op, e.Method, e.URL)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": http %d", e.StatusCode)
		if e.Body != "" {
			msg += ": " + e.Body
		}
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Is reports ErrRemote as matching every RemoteError.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}
