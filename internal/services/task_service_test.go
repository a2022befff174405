package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/domain"
	"taskflow/internal/errors"
	"taskflow/internal/repository/sqlite"
)

// captureNotifier records dispatched notifications for assertions.
type captureNotifier struct {
	mu      sync.Mutex
	created []domain.Task
	updated []domain.Task
}

func (n *captureNotifier) DispatchTaskCreated(task domain.Task) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, task)
}

func (n *captureNotifier) DispatchTaskUpdated(task domain.Task) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.updated = append(n.updated, task)
}

func (n *captureNotifier) createdCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.created)
}

func (n *captureNotifier) updatedCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.updated)
}

func setupTaskService(t *testing.T) (TaskService, *captureNotifier) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	notifier := &captureNotifier{}
	return NewTaskService(repo, notifier), notifier
}

func validTaskInput() CreateTaskInput {
	return CreateTaskInput{
		ProjectID: "project-1",
		Name:      "Write report",
		Assignee:  "alice@example.com",
	}
}

func TestTaskService_CreateTask_Defaults(t *testing.T) {
	service, notifier := setupTaskService(t)
	ctx := context.Background()

	task, err := service.CreateTask(ctx, validTaskInput())
	require.NoError(t, err)
	require.NotNil(t, task)

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "project-1", task.ProjectID)
	assert.Equal(t, domain.DefaultPriority, task.Priority)
	assert.Equal(t, domain.StatusPending, task.Status)
	assert.Nil(t, task.DueDate)
	assert.False(t, task.CreatedAt.IsZero())
	assert.Equal(t, task.CreatedAt, task.UpdatedAt)

	assert.Equal(t, 1, notifier.createdCount())
	assert.Equal(t, 0, notifier.updatedCount())
}

func TestTaskService_CreateTask_ExplicitValues(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	priority := 5
	status := "IN_PROGRESS"
	input := validTaskInput()
	input.ID = "task-custom"
	input.Description = "Quarterly numbers"
	input.Priority = &priority
	input.Status = &status
	input.DueDate = "2026-04-01T09:30:00Z"

	task, err := service.CreateTask(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, "task-custom", task.ID)
	assert.Equal(t, "Quarterly numbers", task.Description)
	assert.Equal(t, 5, task.Priority)
	assert.Equal(t, domain.StatusInProgress, task.Status)
	require.NotNil(t, task.DueDate)
	assert.True(t, time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC).Equal(*task.DueDate))
}

func TestTaskService_CreateTask_DueDateOffsetDropped(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	input := validTaskInput()
	input.DueDate = "2026-04-01T09:30:00+05:00"

	task, err := service.CreateTask(ctx, input)
	require.NoError(t, err)

	// The wall clock survives; the offset does not shift it.
	require.NotNil(t, task.DueDate)
	assert.True(t, time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC).Equal(*task.DueDate))
}

func TestTaskService_CreateTask_ValidationErrors(t *testing.T) {
	badPriority := 9
	badStatus := "DONE"

	tests := []struct {
		name   string
		mutate func(input *CreateTaskInput)
	}{
		{name: "missing project id", mutate: func(input *CreateTaskInput) { input.ProjectID = "" }},
		{name: "missing name", mutate: func(input *CreateTaskInput) { input.Name = "  " }},
		{name: "missing assignee", mutate: func(input *CreateTaskInput) { input.Assignee = "" }},
		{name: "priority out of range", mutate: func(input *CreateTaskInput) { input.Priority = &badPriority }},
		{name: "unknown status", mutate: func(input *CreateTaskInput) { input.Status = &badStatus }},
		{name: "malformed due date", mutate: func(input *CreateTaskInput) { input.DueDate = "tomorrow" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, notifier := setupTaskService(t)

			input := validTaskInput()
			tt.mutate(&input)

			task, err := service.CreateTask(context.Background(), input)
			require.Error(t, err)
			assert.Nil(t, task)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

			// Nothing was persisted, so nothing was announced.
			assert.Equal(t, 0, notifier.createdCount())
		})
	}
}

func TestTaskService_GetTask(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, validTaskInput())
	require.NoError(t, err)

	task, err := service.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, task.ID)
	assert.Equal(t, created.Name, task.Name)

	_, err = service.GetTask(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestTaskService_UpdateTask_PatchSemantics(t *testing.T) {
	service, notifier := setupTaskService(t)
	ctx := context.Background()

	input := validTaskInput()
	input.Description = "original description"
	input.DueDate = "2026-04-01T09:30:00Z"
	created, err := service.CreateTask(ctx, input)
	require.NoError(t, err)

	name := "Write final report"
	priority := 1
	updated, err := service.UpdateTask(ctx, created.ID, TaskPatch{
		Name:     &name,
		Priority: &priority,
	})
	require.NoError(t, err)

	// Supplied fields change, everything else stays put.
	assert.Equal(t, "Write final report", updated.Name)
	assert.Equal(t, 1, updated.Priority)
	assert.Equal(t, "original description", updated.Description)
	assert.Equal(t, created.ProjectID, updated.ProjectID)
	require.NotNil(t, updated.DueDate)
	assert.True(t, created.DueDate.Equal(*updated.DueDate))
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	assert.Equal(t, 1, notifier.updatedCount())
}

func TestTaskService_UpdateTask_ClearsDueDate(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	input := validTaskInput()
	input.DueDate = "2026-04-01T09:30:00Z"
	created, err := service.CreateTask(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, created.DueDate)

	empty := ""
	updated, err := service.UpdateTask(ctx, created.ID, TaskPatch{DueDate: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.DueDate)
}

func TestTaskService_UpdateTask_NotFound(t *testing.T) {
	service, notifier := setupTaskService(t)

	name := "anything"
	task, err := service.UpdateTask(context.Background(), "missing", TaskPatch{Name: &name})
	require.Error(t, err)
	assert.Nil(t, task)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	assert.Equal(t, 0, notifier.updatedCount())
}

func TestTaskService_UpdateTask_InvalidPatch(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, validTaskInput())
	require.NoError(t, err)

	badPriority := 0
	_, err = service.UpdateTask(ctx, created.ID, TaskPatch{Priority: &badPriority})
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	// The stored task is untouched.
	task, err := service.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPriority, task.Priority)
}

func TestTaskService_UpdateTaskStatus(t *testing.T) {
	service, notifier := setupTaskService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, validTaskInput())
	require.NoError(t, err)

	updated, err := service.UpdateTaskStatus(ctx, created.ID, "COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.Equal(t, 1, notifier.updatedCount())

	_, err = service.UpdateTaskStatus(ctx, created.ID, "DONE")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))

	_, err = service.UpdateTaskStatus(ctx, "missing", "COMPLETED")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestTaskService_ConcurrentStatusUpdates(t *testing.T) {
	// A file-backed store so concurrent connections see the same data.
	repo, err := sqlite.New(filepath.Join(t.TempDir(), "taskflow.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	notifier := &captureNotifier{}
	service := NewTaskService(repo, notifier)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, validTaskInput())
	require.NoError(t, err)

	statuses := []string{"IN_PROGRESS", "COMPLETED"}
	var wg sync.WaitGroup
	for _, status := range statuses {
		wg.Add(1)
		go func(status string) {
			defer wg.Done()
			// Retry on transient store contention; both writes must land.
			for attempt := 0; attempt < 20; attempt++ {
				if _, err := service.UpdateTaskStatus(ctx, created.ID, status); err == nil {
					return
				}
				time.Sleep(5 * time.Millisecond)
			}
			t.Errorf("status update to %s never succeeded", status)
		}(status)
	}
	wg.Wait()

	// Last writer wins; the persisted state is one of the written values
	// and the row is intact.
	task, err := service.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Contains(t, []domain.TaskStatus{domain.StatusInProgress, domain.StatusCompleted}, task.Status)
	assert.True(t, task.IsValid())
	assert.Equal(t, 2, notifier.updatedCount())
}

func TestTaskService_DeleteTask(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, validTaskInput())
	require.NoError(t, err)

	deleted, err := service.DeleteTask(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Deleting again reports absence without an error.
	deleted, err = service.DeleteTask(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTaskService_QueryTasks_Filters(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	seed := []CreateTaskInput{
		{ID: "task-a", ProjectID: "project-1", Name: "A", Assignee: "alice", Priority: intPtr(1), Status: strPtr("COMPLETED"), DueDate: "2026-01-15T00:00:00Z"},
		{ID: "task-b", ProjectID: "project-1", Name: "B", Assignee: "bob", Priority: intPtr(5), Status: strPtr("PENDING"), DueDate: "2026-03-15T00:00:00Z"},
		{ID: "task-c", ProjectID: "project-2", Name: "C", Assignee: "carol", Priority: intPtr(5), Status: strPtr("PENDING"), DueDate: "2026-06-15T00:00:00Z"},
		{ID: "task-d", ProjectID: "project-1", Name: "D", Assignee: "dave", Priority: intPtr(5), Status: strPtr("PENDING")},
	}
	for _, input := range seed {
		_, err := service.CreateTask(ctx, input)
		require.NoError(t, err)
	}

	projectID := "project-1"
	status := domain.StatusPending
	priority := 5
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		query       domain.TaskQuery
		expectedIDs []string
	}{
		{
			name:        "no filters returns everything sorted by due date",
			query:       domain.TaskQuery{},
			expectedIDs: []string{"task-a", "task-b", "task-c", "task-d"},
		},
		{
			name:        "by project",
			query:       domain.TaskQuery{ProjectID: &projectID},
			expectedIDs: []string{"task-a", "task-b", "task-d"},
		},
		{
			name:        "by status and priority",
			query:       domain.TaskQuery{Status: &status, Priority: &priority},
			expectedIDs: []string{"task-b", "task-c", "task-d"},
		},
		{
			name:  "date range keeps undated tasks",
			query: domain.TaskQuery{StartDate: &start, EndDate: &end},
			// task-d has no due date and always passes range filters.
			expectedIDs: []string{"task-b", "task-d"},
		},
		{
			name: "all filters compose",
			query: domain.TaskQuery{
				ProjectID: &projectID,
				Status:    &status,
				Priority:  &priority,
				StartDate: &start,
				EndDate:   &end,
			},
			expectedIDs: []string{"task-b", "task-d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.QueryTasks(ctx, tt.query)
			require.NoError(t, err)

			var ids []string
			for _, task := range result.Tasks {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, len(tt.expectedIDs), result.Total)
		})
	}
}

func TestTaskService_QueryTasks_Sorting(t *testing.T) {
	service, _ := setupTaskService(t)
	ctx := context.Background()

	seed := []CreateTaskInput{
		{ID: "low", ProjectID: "p", Name: "banana", Assignee: "a", Priority: intPtr(1), DueDate: "2026-06-01T00:00:00Z"},
		{ID: "high", ProjectID: "p", Name: "apple", Assignee: "a", Priority: intPtr(5), DueDate: "2026-01-01T00:00:00Z"},
		{ID: "undated", ProjectID: "p", Name: "cherry", Assignee: "a", Priority: intPtr(3)},
	}
	for _, input := range seed {
		_, err := service.CreateTask(ctx, input)
		require.NoError(t, err)
	}

	tests := []struct {
		name        string
		sortBy      domain.SortKey
		sortOrder   domain.SortOrder
		expectedIDs []string
	}{
		{
			name:        "default sorts by due date ascending, undated last",
			expectedIDs: []string{"high", "low", "undated"},
		},
		{
			name:        "priority descending",
			sortBy:      domain.SortByPriority,
			sortOrder:   domain.SortDescending,
			expectedIDs: []string{"high", "undated", "low"},
		},
		{
			name:        "name ascending",
			sortBy:      domain.SortByName,
			expectedIDs: []string{"high", "low", "undated"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.QueryTasks(ctx, domain.TaskQuery{SortBy: tt.sortBy, SortOrder: tt.sortOrder})
			require.NoError(t, err)

			var ids []string
			for _, task := range result.Tasks {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
		})
	}

	t.Run("unknown sort key returns the full set unsorted", func(t *testing.T) {
		result, err := service.QueryTasks(ctx, domain.TaskQuery{SortBy: domain.SortKey("assignee")})
		require.NoError(t, err)

		var ids []string
		for _, task := range result.Tasks {
			ids = append(ids, task.ID)
		}
		assert.ElementsMatch(t, []string{"low", "high", "undated"}, ids)
	})
}

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}
