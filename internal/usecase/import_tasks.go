package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/taskboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// ImportTasksInput contains the parameters for importing tasks.
type ImportTasksInput struct {
	Content []byte // YAML list of {title, description}
}

// ImportTasksOutput contains the result of importing tasks.
// On failure it still reports the tasks created before the error.
type ImportTasksOutput struct {
	Created []domain.Task // Tasks created, in file order
	Skipped int           // Entries skipped for a blank title
}

// ImportTasks creates one task per entry of a YAML file.
type ImportTasks struct {
	newTask *NewTask
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(api domain.TaskAPI, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		newTask: NewNewTask(api, logger),
	}
}

// ParseTaskRequests decodes a YAML list of task entries.
func ParseTaskRequests(content []byte) ([]domain.NewTaskRequest, error) {
	var reqs []domain.NewTaskRequest
	if err := yaml.Unmarshal(content, &reqs); err != nil {
		return nil, fmt.Errorf("parse tasks file: %w", err)
	}
	return reqs, nil
}

// Execute issues one create per entry in order and stops at the first failure.
func (uc *ImportTasks) Execute(ctx context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	reqs, err := ParseTaskRequests(in.Content)
	if err != nil {
		return nil, err
	}

	out := &ImportTasksOutput{}
	for i, req := range reqs {
		res, err := uc.newTask.Execute(ctx, NewTaskInput{
			Title:       req.Title,
			Description: req.Description,
		})
		if errors.Is(err, domain.ErrEmptyTitle) {
			out.Skipped++
			continue
		}
		if err != nil {
			return out, fmt.Errorf("import entry %d: %w", i+1, err)
		}
		out.Created = append(out.Created, res.Task)
	}
	return out, nil
}
