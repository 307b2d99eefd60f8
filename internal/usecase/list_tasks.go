package usecase

import (
	"context"

	"github.com/runoshun/taskboard/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Filter domain.Filter // Status filter (empty = All)
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []domain.Task // Tasks visible under the filter, in server order
	Total int           // Size of the full collection
}

// ListTasks is the use case for fetching the task collection.
type ListTasks struct {
	api    domain.TaskAPI
	logger domain.Logger
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(api domain.TaskAPI, logger domain.Logger) *ListTasks {
	return &ListTasks{
		api:    api,
		logger: loggerOrNop(logger),
	}
}

// Execute fetches the full collection and applies the filter.
func (uc *ListTasks) Execute(ctx context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.api.List(ctx)
	if err != nil {
		return nil, remoteFailure(uc.logger, "list tasks", err)
	}

	filter := in.Filter
	if filter == "" {
		filter = domain.FilterAll
	}

	return &ListTasksOutput{
		Tasks: domain.FilterTasks(tasks, filter),
		Total: len(tasks),
	}, nil
}
