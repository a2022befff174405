package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidator_ValidateTaskForCreation(t *testing.T) {
	tests := []struct {
		name          string
		projectID     string
		taskName      string
		assignee      string
		priority      *int
		status        *string
		expectedField string
	}{
		{
			name:      "valid minimal task",
			projectID: "project-1",
			taskName:  "Write report",
			assignee:  "alice@example.com",
		},
		{
			name:      "valid task with explicit priority and status",
			projectID: "project-1",
			taskName:  "Write report",
			assignee:  "alice@example.com",
			priority:  intPtr(5),
			status:    strPtr("IN_PROGRESS"),
		},
		{
			name:          "missing project id",
			projectID:     "",
			taskName:      "Write report",
			assignee:      "alice@example.com",
			expectedField: "projectId",
		},
		{
			name:          "whitespace-only name",
			projectID:     "project-1",
			taskName:      "   ",
			assignee:      "alice@example.com",
			expectedField: "name",
		},
		{
			name:          "missing assignee",
			projectID:     "project-1",
			taskName:      "Write report",
			assignee:      "",
			expectedField: "assignee",
		},
		{
			name:          "priority out of range",
			projectID:     "project-1",
			taskName:      "Write report",
			assignee:      "alice@example.com",
			priority:      intPtr(9),
			expectedField: "priority",
		},
		{
			name:          "unknown status",
			projectID:     "project-1",
			taskName:      "Write report",
			assignee:      "alice@example.com",
			status:        strPtr("DONE"),
			expectedField: "status",
		},
	}

	validator := NewTaskValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTaskForCreation(tt.projectID, tt.taskName, tt.assignee, tt.priority, tt.status)

			if tt.expectedField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.NotEmpty(t, validationErr.GetFieldErrors(tt.expectedField))
		})
	}
}

func TestTaskValidator_ValidateTaskForCreation_MultipleErrors(t *testing.T) {
	validator := NewTaskValidator()

	err := validator.ValidateTaskForCreation("", "", "", intPtr(0), strPtr("DONE"))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Len(t, validationErr.Errors, 5)
}

func TestTaskValidator_ValidateTaskPatch(t *testing.T) {
	validator := NewTaskValidator()

	// Nil fields are untouched fields, never errors.
	assert.NoError(t, validator.ValidateTaskPatch(nil, nil))
	assert.NoError(t, validator.ValidateTaskPatch(intPtr(1), strPtr("COMPLETED")))

	err := validator.ValidateTaskPatch(intPtr(6), nil)
	require.Error(t, err)

	err = validator.ValidateTaskPatch(nil, strPtr("cancelled"))
	require.Error(t, err)
}

func TestTaskValidator_ValidateStatus(t *testing.T) {
	validator := NewTaskValidator()

	assert.NoError(t, validator.ValidateStatus("PENDING"))
	assert.NoError(t, validator.ValidateStatus("IN_PROGRESS"))
	assert.NoError(t, validator.ValidateStatus("COMPLETED"))
	assert.Error(t, validator.ValidateStatus(""))
	assert.Error(t, validator.ValidateStatus("completed"))
}

func TestTaskValidator_ValidateTaskID(t *testing.T) {
	validator := NewTaskValidator()

	assert.NoError(t, validator.ValidateTaskID("task-1"))
	assert.Error(t, validator.ValidateTaskID(""))
	assert.Error(t, validator.ValidateTaskID("  "))
}

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}
