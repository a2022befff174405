package validation

import (
	"strings"
	"time"

	"taskflow/internal/domain"
)

// Date layouts accepted for due dates. The offset form matches the API
// contract (ISO-8601 with explicit offset); the bare form is the
// fallback for timestamps that arrive without one.
const (
	dueDateLayoutOffset = time.RFC3339
	dueDateLayoutLocal  = "2006-01-02T15:04:05"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidPriority checks if a priority is within the allowed range
func (v *Validator) IsValidPriority(priority int) bool {
	return priority >= domain.MinPriority && priority <= domain.MaxPriority
}

// IsValidStatus checks if a status string is one of the allowed values
func (v *Validator) IsValidStatus(status string) bool {
	return domain.TaskStatus(status).IsValid()
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// ParseDueDate parses an ISO-8601 timestamp into a zone-naive instant.
// The offset is parsed and then dropped: only the wall-clock fields of
// the incoming value are kept. An empty string yields a nil due date.
func (v *Validator) ParseDueDate(s string) (*time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, nil
	}

	t, err := time.Parse(dueDateLayoutOffset, trimmed)
	if err != nil {
		t, err = time.Parse(dueDateLayoutLocal, trimmed)
	}
	if err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("dueDate", s, "ISO-8601 timestamp")
		return nil, validationError
	}

	naive := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	return &naive, nil
}
