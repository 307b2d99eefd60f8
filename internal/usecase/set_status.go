package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
)

// SetStatusInput contains the parameters for changing a task's status.
type SetStatusInput struct {
	TaskID string        // Task ID
	Status domain.Status // Target status
}

// SetStatusOutput contains the result of changing a task's status.
type SetStatusOutput struct {
	Task domain.Task // The task as returned by the server
}

// SetStatus is the use case for changing a task's status.
type SetStatus struct {
	api    domain.TaskAPI
	logger domain.Logger
}

// NewSetStatus creates a new SetStatus use case.
func NewSetStatus(api domain.TaskAPI, logger domain.Logger) *SetStatus {
	return &SetStatus{
		api:    api,
		logger: loggerOrNop(logger),
	}
}

// Execute sends the target status and returns the server's representation.
func (uc *SetStatus) Execute(ctx context.Context, in SetStatusInput) (*SetStatusOutput, error) {
	if in.TaskID == "" {
		return nil, domain.ErrEmptyTaskID
	}
	if !in.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Status)
	}

	task, err := uc.api.SetStatus(ctx, in.TaskID, in.Status)
	if err != nil {
		return nil, remoteFailure(uc.logger, "update task", err)
	}

	uc.logger.Info(logCategory, fmt.Sprintf("task %s is now %s", task.ID, task.Status))
	return &SetStatusOutput{Task: task}, nil
}
