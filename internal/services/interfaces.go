package services

import (
	"context"

	"taskflow/internal/domain"
)

// CreateProjectInput carries the fields of a project create request.
// An empty ID means "generate one".
type CreateProjectInput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// ProjectPatch is a partial project update. Nil fields are left untouched.
type ProjectPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

// CreateTaskInput carries the fields of a task create request. DueDate
// is the raw ISO-8601 string from the client; empty means no due date.
// Nil Priority/Status select the defaults.
type CreateTaskInput struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"projectId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Priority    *int    `json:"priority"`
	DueDate     string  `json:"dueDate"`
	Assignee    string  `json:"assignee"`
	Status      *string `json:"status"`
}

// TaskPatch is a partial task update. Nil fields are left untouched; a
// non-nil empty DueDate clears the due date.
type TaskPatch struct {
	ProjectID   *string `json:"projectId"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority"`
	DueDate     *string `json:"dueDate"`
	Assignee    *string `json:"assignee"`
	Status      *string `json:"status"`
}

// TasksResult is the outcome of a task query: the full matching set and
// its size (no pagination).
type TasksResult struct {
	Tasks []*domain.Task `json:"tasks"`
	Total int            `json:"total"`
}

// ProjectStats holds the per-project task counts by status.
type ProjectStats struct {
	Total      int64 `json:"total"`
	Completed  int64 `json:"completed"`
	InProgress int64 `json:"inProgress"`
	Pending    int64 `json:"pending"`
}

// ProjectService handles project lifecycle operations
type ProjectService interface {
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, id string, patch ProjectPatch) (*domain.Project, error)

	// DeleteProject removes the project and reports whether it existed.
	// Tasks referencing the project are not touched.
	DeleteProject(ctx context.Context, id string) (bool, error)
}

// TaskService handles task lifecycle and query operations
type TaskService interface {
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	QueryTasks(ctx context.Context, query domain.TaskQuery) (*TasksResult, error)
	CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch TaskPatch) (*domain.Task, error)

	// UpdateTaskStatus is the status-only shorthand update.
	UpdateTaskStatus(ctx context.Context, id string, status string) (*domain.Task, error)

	// DeleteTask removes the task and reports whether it existed.
	DeleteTask(ctx context.Context, id string) (bool, error)
}

// StatsService computes per-project task counts
type StatsService interface {
	// StatsFor returns counts for the given project ids. An empty input
	// targets the union of every project id that has tasks and every
	// existing project id, so zero-task projects appear with zero counts.
	StatsFor(ctx context.Context, projectIDs []string) (map[string]*ProjectStats, error)
}

// Notifier is the fire-and-forget hand-off the task service uses after
// writes. Satisfied by *notify.Dispatcher.
type Notifier interface {
	DispatchTaskCreated(task domain.Task)
	DispatchTaskUpdated(task domain.Task)
}
