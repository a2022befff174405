package notify

import (
	"fmt"
	"strings"
	"time"

	"taskflow/internal/domain"
)

// EventType identifies what happened to the task a notification is about.
type EventType string

const (
	EventTaskCreated EventType = "TASK CREATED"
	EventTaskUpdated EventType = "TASK UPDATED"
)

const (
	dueDateDisplayLayout = "01/02/2006"
	noDueDate            = "No due date"
)

// FormatDueDate renders a due date for the notification body, with a
// sentinel for tasks that have none.
func FormatDueDate(t *time.Time) string {
	if t == nil {
		return noDueDate
	}
	return t.Format(dueDateDisplayLayout)
}

// BuildMessage formats the simulated email notification for a task event.
// The recipient is the assignee; the subject is derived from the task
// name and event type; updates additionally carry the current status.
func BuildMessage(event EventType, task domain.Task) string {
	var b strings.Builder

	b.WriteString("\n=== EMAIL NOTIFICATION ===\n")
	fmt.Fprintf(&b, "Type: %s\n", event)
	fmt.Fprintf(&b, "To: %s\n", task.Assignee)

	switch event {
	case EventTaskCreated:
		fmt.Fprintf(&b, "Subject: Task Assigned: %s\n", task.Name)
	default:
		fmt.Fprintf(&b, "Subject: Task Updated: %s\n", task.Name)
	}

	fmt.Fprintf(&b, "Task ID: %s\n", task.ID)
	fmt.Fprintf(&b, "Priority: %d\n", task.Priority)
	fmt.Fprintf(&b, "Due Date: %s\n", FormatDueDate(task.DueDate))

	if event == EventTaskUpdated {
		fmt.Fprintf(&b, "Status: %s\n", task.Status)
		fmt.Fprintf(&b, "Message: You have been notified of an update to the task %q\n", task.Name)
	} else {
		fmt.Fprintf(&b, "Message: You have been assigned to the task %q\n", task.Name)
	}

	b.WriteString("==========================\n")
	return b.String()
}
