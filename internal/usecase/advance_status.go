package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
)

// AdvanceStatusInput contains the parameters for advancing a task.
type AdvanceStatusInput struct {
	TaskID string // Task ID
}

// AdvanceStatusOutput contains the result of advancing a task.
type AdvanceStatusOutput struct {
	Task     domain.Task   // The task as returned by the server
	Previous domain.Status // Status before the update
}

// AdvanceStatus moves a task one step along To Do -> In Progress -> Done -> To Do.
// The current status is read from the server first, so it costs one GET and one PUT.
type AdvanceStatus struct {
	api       domain.TaskAPI
	setStatus *SetStatus
	logger    domain.Logger
}

// NewAdvanceStatus creates a new AdvanceStatus use case.
func NewAdvanceStatus(api domain.TaskAPI, logger domain.Logger) *AdvanceStatus {
	return &AdvanceStatus{
		api:       api,
		setStatus: NewSetStatus(api, logger),
		logger:    loggerOrNop(logger),
	}
}

// Execute advances the task with the given ID.
func (uc *AdvanceStatus) Execute(ctx context.Context, in AdvanceStatusInput) (*AdvanceStatusOutput, error) {
	if in.TaskID == "" {
		return nil, domain.ErrEmptyTaskID
	}
	tasks, err := uc.api.List(ctx)
	if err != nil {
		return nil, remoteFailure(uc.logger, "list tasks", err)
	}

	current, ok := domain.NewBoard().WithTasks(tasks).Find(in.TaskID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, in.TaskID)
	}

	out, err := uc.setStatus.Execute(ctx, SetStatusInput{
		TaskID: current.ID,
		Status: current.NextStatus(),
	})
	if err != nil {
		return nil, err
	}

	return &AdvanceStatusOutput{
		Task:     out.Task,
		Previous: current.Status,
	}, nil
}
