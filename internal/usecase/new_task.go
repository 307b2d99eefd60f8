package usecase

import (
	"context"

	"github.com/runoshun/taskboard/internal/domain"
)

// NewTaskInput contains the parameters for creating a task.
type NewTaskInput struct {
	Title       string // Task title (required)
	Description string // Task description (optional)
}

// NewTaskOutput contains the result of creating a task.
type NewTaskOutput struct {
	Task domain.Task // The task as returned by the server
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	api    domain.TaskAPI
	logger domain.Logger
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(api domain.TaskAPI, logger domain.Logger) *NewTask {
	return &NewTask{
		api:    api,
		logger: loggerOrNop(logger),
	}
}

// Execute creates a task. A blank title returns domain.ErrEmptyTitle
// without issuing a request.
func (uc *NewTask) Execute(ctx context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	draft := domain.Draft{Title: in.Title, Description: in.Description}
	if draft.IsBlank() {
		return nil, domain.ErrEmptyTitle
	}

	task, err := uc.api.Create(ctx, domain.NewTaskRequest{
		Title:       in.Title,
		Description: in.Description,
	})
	if err != nil {
		return nil, remoteFailure(uc.logger, "create task", err)
	}

	uc.logger.Info(logCategory, "created task "+task.ID)
	return &NewTaskOutput{Task: task}, nil
}
