package validation

import (
	"fmt"
	"time"

	"taskflow/internal/domain"
)

// TaskValidator provides validation for task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateTaskForCreation validates the required fields of a new task.
// Priority and status are optional: nil means "use the default", but a
// supplied value must be in range.
func (tv *TaskValidator) ValidateTaskForCreation(projectID, name, assignee string, priority *int, status *string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(projectID) {
		validationError.AddRequiredError("projectId")
	}
	if !tv.validator.IsNonEmptyString(name) {
		validationError.AddRequiredError("name")
	}
	if !tv.validator.IsNonEmptyString(assignee) {
		validationError.AddRequiredError("assignee")
	}

	tv.appendPatchErrors(validationError, priority, status)

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTaskPatch validates the supplied fields of a partial task update
func (tv *TaskValidator) ValidateTaskPatch(priority *int, status *string) error {
	validationError := NewValidationError()

	tv.appendPatchErrors(validationError, priority, status)

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateStatus validates a status value on its own
func (tv *TaskValidator) ValidateStatus(status string) error {
	if !tv.validator.IsValidStatus(status) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("status", status, "must be one of PENDING, IN_PROGRESS, COMPLETED")
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if !tv.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("id")
		return validationError
	}
	return nil
}

// ParseDueDate validates and parses a due-date string
func (tv *TaskValidator) ParseDueDate(s string) (*time.Time, error) {
	return tv.validator.ParseDueDate(s)
}

func (tv *TaskValidator) appendPatchErrors(validationError *ValidationError, priority *int, status *string) {
	if priority != nil && !tv.validator.IsValidPriority(*priority) {
		reason := fmt.Sprintf("must be between %d and %d", domain.MinPriority, domain.MaxPriority)
		validationError.AddInvalidRangeError("priority", *priority, reason)
	}
	if status != nil && !tv.validator.IsValidStatus(*status) {
		validationError.AddInvalidValueError("status", *status, "must be one of PENDING, IN_PROGRESS, COMPLETED")
	}
}
