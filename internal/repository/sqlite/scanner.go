package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanProject scans a single project from a database row
func ScanProject(scanner Scanner) (*Project, error) {
	project := &Project{}
	var description sql.NullString

	err := scanner.Scan(
		&project.ID,
		&project.Name,
		&description,
		&project.Color,
	)
	if err != nil {
		return nil, err
	}

	project.Description = description.String
	return project, nil
}

// ScanProjects scans multiple projects from database rows
func ScanProjects(rows Rows) ([]*Project, error) {
	var projects []*Project
	for rows.Next() {
		project, err := ScanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var description sql.NullString
	var dueDate sql.NullString
	var createdAt, updatedAt string

	err := scanner.Scan(
		&task.ID,
		&task.ProjectID,
		&task.Name,
		&description,
		&task.Priority,
		&dueDate,
		&task.Assignee,
		&task.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Description = description.String

	if dueDate.Valid {
		due, err := ParseTimeFromDB(dueDate.String)
		if err != nil {
			return nil, err
		}
		task.DueDate = &due
	}

	if task.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	if task.UpdatedAt, err = ParseTimeFromDB(updatedAt); err != nil {
		return nil, err
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
