package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"taskflow/internal/errors"
	"taskflow/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// TaskSearchOptions contains the exact-match task predicates that are
// compiled into the SQL query. Date-range filtering and sorting happen
// in-process in the task service.
type TaskSearchOptions struct {
	ProjectID *string
	Status    *string
	Priority  *int
}

// Repository defines the interface for database operations
type Repository interface {
	// Project operations
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id string) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id string) error
	ProjectExists(ctx context.Context, id string) (bool, error)

	// Task operations
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id string) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	FindTasks(ctx context.Context, opts TaskSearchOptions) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id string) error
	TaskExists(ctx context.Context, id string) (bool, error)

	// Stats queries
	DistinctTaskProjectIDs(ctx context.Context) ([]string, error)
	CountTasksByProject(ctx context.Context, projectID string) (int64, error)
	CountTasksByProjectAndStatus(ctx context.Context, projectID string, status string) (int64, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateProject inserts a new project row
func (r *SQLiteRepository) CreateProject(ctx context.Context, project *Project) error {
	query := `
	INSERT INTO projects (id, name, description, color)
	VALUES (?, ?, ?, ?)`

	return Execute(ctx, r.db, query, project.ID, project.Name, nullableString(project.Description), project.Color)
}

// GetProject retrieves a project by ID
func (r *SQLiteRepository) GetProject(ctx context.Context, id string) (*Project, error) {
	query := `
	SELECT id, name, description, color
	FROM projects
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanProject, "project", id, id)
}

// ListProjects retrieves all projects ordered by name
func (r *SQLiteRepository) ListProjects(ctx context.Context) ([]*Project, error) {
	query := `
	SELECT id, name, description, color
	FROM projects
	ORDER BY name ASC`

	return QueryMultiple(ctx, r.db, query, ScanProjects, "projects")
}

// UpdateProject updates an existing project row
func (r *SQLiteRepository) UpdateProject(ctx context.Context, project *Project) error {
	query := `
	UPDATE projects
	SET name = ?, description = ?, color = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "project", project.ID,
		project.Name, nullableString(project.Description), project.Color, project.ID)
}

// DeleteProject deletes a project by ID. Tasks referencing the project
// are left untouched (no cascade).
func (r *SQLiteRepository) DeleteProject(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "project", id, id)
}

// ProjectExists reports whether a project row with the given ID exists
func (r *SQLiteRepository) ProjectExists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM projects WHERE id = ?)`
	return QueryExists(ctx, r.db, query, id)
}

const taskColumns = `id, project_id, name, description, priority, due_date, assignee, status, created_at, updated_at`

// CreateTask inserts a new task row
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (` + taskColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return Execute(ctx, r.db, query,
		task.ID, task.ProjectID, task.Name, nullableString(task.Description), task.Priority,
		FormatTimePtrForDB(task.DueDate), task.Assignee, task.Status,
		FormatTimeForDB(task.CreatedAt), FormatTimeForDB(task.UpdatedAt))
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id string) (*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", id, id)
}

// ListTasks retrieves all tasks
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// FindTasks retrieves tasks matching the provided exact-match predicates
func (r *SQLiteRepository) FindTasks(ctx context.Context, opts TaskSearchOptions) ([]*Task, error) {
	var conditions []string
	var args []interface{}

	if opts.ProjectID != nil {
		conditions = append(conditions, "project_id = ?")
		args = append(args, *opts.ProjectID)
	}
	if opts.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *opts.Status)
	}
	if opts.Priority != nil {
		conditions = append(conditions, "priority = ?")
		args = append(args, *opts.Priority)
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at ASC"

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", args...)
}

// UpdateTask updates an existing task row
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	query := `
	UPDATE tasks
	SET project_id = ?, name = ?, description = ?, priority = ?, due_date = ?, assignee = ?, status = ?, updated_at = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", task.ID,
		task.ProjectID, task.Name, nullableString(task.Description), task.Priority,
		FormatTimePtrForDB(task.DueDate), task.Assignee, task.Status,
		FormatTimeForDB(task.UpdatedAt), task.ID)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", id, id)
}

// TaskExists reports whether a task row with the given ID exists
func (r *SQLiteRepository) TaskExists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM tasks WHERE id = ?)`
	return QueryExists(ctx, r.db, query, id)
}

// DistinctTaskProjectIDs returns every project id that has at least one task
func (r *SQLiteRepository) DistinctTaskProjectIDs(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT project_id FROM tasks`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, HandleDatabaseError("query project ids", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, HandleDatabaseError("scan project id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, HandleDatabaseError("scan project ids", err)
	}
	return ids, nil
}

// CountTasksByProject counts all tasks belonging to a project
func (r *SQLiteRepository) CountTasksByProject(ctx context.Context, projectID string) (int64, error) {
	query := `SELECT COUNT(*) FROM tasks WHERE project_id = ?`
	return QueryCount(ctx, r.db, query, projectID)
}

// CountTasksByProjectAndStatus counts a project's tasks with the given status
func (r *SQLiteRepository) CountTasksByProjectAndStatus(ctx context.Context, projectID string, status string) (int64, error) {
	query := `SELECT COUNT(*) FROM tasks WHERE project_id = ? AND status = ?`
	return QueryCount(ctx, r.db, query, projectID, status)
}

// nullableString maps an empty string to NULL for optional text columns
func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
