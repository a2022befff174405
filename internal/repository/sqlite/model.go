package sqlite

import "time"

// Project represents a project row
type Project struct {
	ID          string
	Name        string
	Description string
	Color       string
}

// Task represents a task row
type Task struct {
	ID          string
	ProjectID   string
	Name        string
	Description string
	Priority    int
	DueDate     *time.Time // Using pointer to allow NULL values
	Assignee    string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
