package domain

import (
	"time"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

// IsValid reports whether the status is one of the allowed values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority bounds and default for tasks.
const (
	MinPriority     = 1
	MaxPriority     = 5
	DefaultPriority = 3
)

// Task represents a unit of work belonging to a project.
// DueDate is zone-naive: the offset of the incoming timestamp is dropped
// at the boundary and only the wall-clock instant is kept.
type Task struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"projectId"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Priority    int        `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	Assignee    string     `json:"assignee"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	if t.ProjectID == "" || t.Name == "" || t.Assignee == "" {
		return false
	}
	if t.Priority < MinPriority || t.Priority > MaxPriority {
		return false
	}
	return t.Status.IsValid()
}

// HasDueDate reports whether the task carries a due date.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
