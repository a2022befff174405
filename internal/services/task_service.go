package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/domain"
	"taskflow/internal/errors"
	"taskflow/internal/repository/sqlite"
	"taskflow/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	notifier      Notifier
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance. The notifier is
// the fire-and-forget dispatch target for create/update side effects.
func NewTaskService(repo sqlite.Repository, notifier Notifier) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		notifier:      notifier,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	return &domainTask, nil
}

// QueryTasks returns the full matching set and its count. Exact-match
// predicates run in the database; the inclusive due-date range and the
// sort are applied in-process. Tasks without a due date always pass the
// range filter and sort after all dated tasks.
func (t *taskServiceImpl) QueryTasks(ctx context.Context, query domain.TaskQuery) (*TasksResult, error) {
	dbOpts := t.mapper.Query.ToDatabase(query)
	dbTasks, err := t.repo.FindTasks(ctx, dbOpts)
	if err != nil {
		return nil, err
	}

	tasks := t.mapper.Task.FromDatabaseSlice(dbTasks)
	tasks = filterTasksByDueDate(tasks, query.StartDate, query.EndDate)

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = domain.SortByDueDate
	}
	sortOrder := query.SortOrder
	if sortOrder == "" {
		sortOrder = domain.SortAscending
	}
	sortTasks(tasks, sortBy, sortOrder)

	return &TasksResult{Tasks: tasks, Total: len(tasks)}, nil
}

// CreateTask validates the input, applies defaults, persists the task
// and dispatches a "task created" notification. The dispatch is
// fire-and-forget: it neither blocks the result nor affects it.
func (t *taskServiceImpl) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskForCreation(input.ProjectID, input.Name, input.Assignee, input.Priority, input.Status); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	dueDate, err := t.taskValidator.ParseDueDate(input.DueDate)
	if err != nil {
		return nil, errors.NewValidationError("invalid due date", err)
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = uuid.NewString()
	}

	priority := domain.DefaultPriority
	if input.Priority != nil {
		priority = *input.Priority
	}

	status := string(domain.StatusPending)
	if input.Status != nil {
		status = *input.Status
	}

	now := time.Now()
	dbTask := &sqlite.Task{
		ID:          id,
		ProjectID:   strings.TrimSpace(input.ProjectID),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Priority:    priority,
		DueDate:     dueDate,
		Assignee:    strings.TrimSpace(input.Assignee),
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := t.repo.CreateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	t.notifier.DispatchTaskCreated(domainTask)

	return &domainTask, nil
}

// UpdateTask applies only the supplied fields, refreshes updatedAt,
// persists and dispatches a "task updated" notification. Returns
// NotFound when the id does not exist, leaving the store unchanged.
func (t *taskServiceImpl) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}
	if err := t.taskValidator.ValidateTaskPatch(patch.Priority, patch.Status); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.ProjectID != nil {
		dbTask.ProjectID = strings.TrimSpace(*patch.ProjectID)
	}
	if patch.Name != nil {
		dbTask.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		dbTask.Description = *patch.Description
	}
	if patch.Priority != nil {
		dbTask.Priority = *patch.Priority
	}
	if patch.Assignee != nil {
		dbTask.Assignee = strings.TrimSpace(*patch.Assignee)
	}
	if patch.Status != nil {
		dbTask.Status = *patch.Status
	}
	if patch.DueDate != nil {
		dueDate, err := t.taskValidator.ParseDueDate(*patch.DueDate)
		if err != nil {
			return nil, errors.NewValidationError("invalid due date", err)
		}
		dbTask.DueDate = dueDate
	}

	dbTask.UpdatedAt = time.Now()

	if err := t.repo.UpdateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	t.notifier.DispatchTaskUpdated(domainTask)

	return &domainTask, nil
}

// UpdateTaskStatus is the status-only shorthand update. The status must
// be one of the allowed values; presence of the field is the HTTP
// layer's concern.
func (t *taskServiceImpl) UpdateTaskStatus(ctx context.Context, id string, status string) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}
	if err := t.taskValidator.ValidateStatus(status); err != nil {
		return nil, errors.NewValidationError("invalid status", err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	dbTask.Status = status
	dbTask.UpdatedAt = time.Now()

	if err := t.repo.UpdateTask(ctx, dbTask); err != nil {
		return nil, err
	}

	domainTask := t.mapper.Task.FromDatabase(*dbTask)
	t.notifier.DispatchTaskUpdated(domainTask)

	return &domainTask, nil
}

// DeleteTask removes the task by id and reports whether it existed
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id string) (bool, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return false, errors.NewValidationError("invalid task ID", err)
	}

	err := t.repo.DeleteTask(ctx, id)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
