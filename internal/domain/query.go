package domain

import "time"

// SortKey selects the comparator used to order task query results.
// Unrecognized keys deliberately fall through to a no-op comparator so
// callers sending unknown values get the unsorted set back instead of
// an error.
type SortKey string

const (
	SortByDueDate  SortKey = "dueDate"
	SortByPriority SortKey = "priority"
	SortByName     SortKey = "name"
)

// SortOrder is the direction of a task query sort. Anything other than
// "desc" (case-insensitive) is treated as ascending.
type SortOrder string

const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// TaskQuery represents the optional filters and sort of a task query.
// Nil filter fields mean "no constraint". Date bounds are inclusive and
// never exclude tasks without a due date.
type TaskQuery struct {
	ProjectID *string
	Status    *TaskStatus
	Priority  *int
	StartDate *time.Time
	EndDate   *time.Time
	SortBy    SortKey
	SortOrder SortOrder
}
