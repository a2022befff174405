package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "task-1")

	assert.Equal(t, ErrorTypeNotFound, err.Type)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, "task not found: task-1", err.Message)

	resource, exists := err.GetContext("resource")
	require.True(t, exists)
	assert.Equal(t, "task", resource)
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewDatabaseError("insert task", cause)

	assert.Equal(t, ErrorTypeDatabase, err.Type)
	assert.Equal(t, "DATABASE_ERROR", err.Code)
	assert.Equal(t, cause, err.Cause)
}

func TestIsAppError(t *testing.T) {
	assert.True(t, IsAppError(NewValidationError("bad", nil)))
	assert.False(t, IsAppError(errors.New("plain")))

	// Wrapped app errors are still recognized.
	wrapped := fmt.Errorf("context: %w", NewNotFoundError("task", "task-1"))
	assert.True(t, IsAppError(wrapped))
}

func TestAsAppError(t *testing.T) {
	original := NewTimeoutError("drain", "10s")

	appErr, ok := AsAppError(fmt.Errorf("wrapped: %w", original))
	require.True(t, ok)
	assert.Equal(t, original, appErr)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsErrorType(t *testing.T) {
	err := NewNotFoundError("task", "task-1")

	assert.True(t, IsErrorType(err, ErrorTypeNotFound))
	assert.False(t, IsErrorType(err, ErrorTypeDatabase))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeNotFound))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation errors pass their message through",
			err:      NewValidationError("priority has invalid range", nil),
			expected: "priority has invalid range",
		},
		{
			name:     "not found errors pass their message through",
			err:      NewNotFoundError("task", "task-1"),
			expected: "task not found: task-1",
		},
		{
			name:     "database errors get a generic message",
			err:      NewDatabaseError("insert", errors.New("disk full")),
			expected: "A database error occurred. Please try again.",
		},
		{
			name:     "timeout errors get a generic message",
			err:      NewTimeoutError("drain", "10s"),
			expected: "The operation timed out. Please try again.",
		},
		{
			name:     "plain errors pass through",
			err:      errors.New("plain failure"),
			expected: "plain failure",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", GetErrorCode(NewNotFoundError("task", "task-1")))
	assert.Equal(t, "VALIDATION_FAILED", GetErrorCode(NewValidationError("bad", nil)))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(errors.New("plain")))
}

func TestShouldLogError(t *testing.T) {
	// Caller errors are noise, system errors are not.
	assert.False(t, ShouldLogError(NewValidationError("bad", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("task", "task-1")))
	assert.False(t, ShouldLogError(NewInvalidInputError("priority", 9, "out of range")))
	assert.True(t, ShouldLogError(NewDatabaseError("insert", errors.New("disk full"))))
	assert.True(t, ShouldLogError(NewTimeoutError("drain", "10s")))
	assert.True(t, ShouldLogError(errors.New("plain")))
}
