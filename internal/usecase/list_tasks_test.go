package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/taskboard/internal/domain"
	"github.com/runoshun/taskboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks() []domain.Task {
	return []domain.Task{
		{ID: "1", Title: "Write docs", Status: domain.StatusTodo},
		{ID: "2", Title: "Fix bug", Status: domain.StatusInProgress},
		{ID: "3", Title: "Ship", Status: domain.StatusDone},
		{ID: "4", Title: "Review", Status: domain.StatusTodo},
	}
}

func TestListTasks_Execute_All(t *testing.T) {
	// Setup
	api := testutil.NewMockTaskAPI(sampleTasks()...)
	uc := NewListTasks(api, nil)

	// Execute
	out, err := uc.Execute(context.Background(), ListTasksInput{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, sampleTasks(), out.Tasks)
	assert.Equal(t, 4, out.Total)
	assert.Equal(t, 1, api.CallCount("List"))
}

func TestListTasks_Execute_Filter(t *testing.T) {
	tests := []struct {
		filter domain.Filter
		want   []string
	}{
		{domain.FilterAll, []string{"1", "2", "3", "4"}},
		{domain.FilterTodo, []string{"1", "4"}},
		{domain.FilterInProgress, []string{"2"}},
		{domain.FilterDone, []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			api := testutil.NewMockTaskAPI(sampleTasks()...)
			uc := NewListTasks(api, nil)

			out, err := uc.Execute(context.Background(), ListTasksInput{Filter: tt.filter})

			require.NoError(t, err)
			var ids []string
			for _, task := range out.Tasks {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, 4, out.Total)
		})
	}
}

func TestListTasks_Execute_Empty(t *testing.T) {
	uc := NewListTasks(testutil.NewMockTaskAPI(), nil)

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	assert.Empty(t, out.Tasks)
	assert.Zero(t, out.Total)
}

func TestListTasks_Execute_Failure(t *testing.T) {
	// Setup
	api := testutil.NewMockTaskAPI()
	api.ListErr = &domain.RemoteError{Op: "list tasks", RequestID: "abc", StatusCode: 500}
	logger := &testutil.MockLogger{}
	uc := NewListTasks(api, logger)

	// Execute
	out, err := uc.Execute(context.Background(), ListTasksInput{})

	// Assert
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrRemote)
	errs := logger.ByLevel("ERROR")
	require.Len(t, errs, 1)
	assert.Equal(t, "remote", errs[0].Category)
	assert.Contains(t, errs[0].Msg, "list tasks failed")
	assert.Contains(t, errs[0].Msg, "request_id=abc")
}

func TestListTasks_Execute_PlainErrorIsWrapped(t *testing.T) {
	api := testutil.NewMockTaskAPI()
	api.ListErr = assert.AnError
	uc := NewListTasks(api, nil)

	_, err := uc.Execute(context.Background(), ListTasksInput{})

	assert.ErrorIs(t, err, domain.ErrRemote)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "list tasks")
}
