package usecase

import (
	"context"

	"github.com/runoshun/taskboard/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID string // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	TaskID string // ID of the deleted task
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	api    domain.TaskAPI
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(api domain.TaskAPI, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		api:    api,
		logger: loggerOrNop(logger),
	}
}

// Execute deletes the task with the given ID.
// The server is the only judge of whether the task exists.
func (uc *DeleteTask) Execute(ctx context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	if in.TaskID == "" {
		return nil, domain.ErrEmptyTaskID
	}
	if err := uc.api.Delete(ctx, in.TaskID); err != nil {
		return nil, remoteFailure(uc.logger, "delete task", err)
	}

	uc.logger.Info(logCategory, "deleted task "+in.TaskID)
	return &DeleteTaskOutput{TaskID: in.TaskID}, nil
}
