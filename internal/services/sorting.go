package services

import (
	"sort"
	"strings"
	"time"

	"taskflow/internal/domain"
)

// taskComparator orders two tasks: negative when a sorts before b,
// positive when after, zero when equal.
type taskComparator func(a, b *domain.Task) int

// taskComparators is the tagged enumeration of recognized sort keys.
// Unrecognized keys deliberately have no entry: sortTasks leaves the
// relative order of the input unchanged for them.
var taskComparators = map[domain.SortKey]taskComparator{
	domain.SortByPriority: comparePriority,
	domain.SortByDueDate:  compareDueDate,
	domain.SortByName:     compareName,
}

// sortTasks sorts in place according to the key and order. "desc"
// (case-insensitive) flips the comparison; any other order value is
// treated as ascending.
func sortTasks(tasks []*domain.Task, key domain.SortKey, order domain.SortOrder) {
	cmp, ok := taskComparators[key]
	if !ok {
		return
	}

	desc := strings.EqualFold(string(order), string(domain.SortDescending))
	sort.SliceStable(tasks, func(i, j int) bool {
		c := cmp(tasks[i], tasks[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// comparePriority sorts an unset priority as largest, after all ranked
// tasks.
func comparePriority(a, b *domain.Task) int {
	return priorityRank(a.Priority) - priorityRank(b.Priority)
}

func priorityRank(p int) int {
	if p < domain.MinPriority {
		return int(^uint(0) >> 1) // unset sorts last
	}
	return p
}

// compareDueDate sorts a nil due date as largest, after all dated tasks.
func compareDueDate(a, b *domain.Task) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return 0
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	case a.DueDate.Before(*b.DueDate):
		return -1
	case a.DueDate.After(*b.DueDate):
		return 1
	default:
		return 0
	}
}

func compareName(a, b *domain.Task) int {
	return strings.Compare(a.Name, b.Name)
}

// filterTasksByDueDate applies the inclusive date-range bounds. A task
// without a due date satisfies any range filter and is never excluded.
func filterTasksByDueDate(tasks []*domain.Task, start, end *time.Time) []*domain.Task {
	if start == nil && end == nil {
		return tasks
	}

	filtered := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.DueDate == nil {
			filtered = append(filtered, t)
			continue
		}
		if start != nil && t.DueDate.Before(*start) {
			continue
		}
		if end != nil && t.DueDate.After(*end) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}
