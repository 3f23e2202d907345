package app_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/primind-class-remind/internal/app"
)

func TestNewValidationErrorSuccess(t *testing.T) {
	tests := []struct {
		name            string
		field           string
		message         string
		expectedError   string
		expectedField   string
		expectedMessage string
	}{
		{
			name:            "user_id validation error",
			field:           "user_id",
			message:         "invalid user ID",
			expectedError:   "validation error: user_id - invalid user ID",
			expectedField:   "user_id",
			expectedMessage: "invalid user ID",
		},
		{
			name:            "course field validation error with index",
			field:           "courses[0].session_type",
			message:         "invalid session type: seminar",
			expectedError:   "validation error: courses[0].session_type - invalid session type: seminar",
			expectedField:   "courses[0].session_type",
			expectedMessage: "invalid session type: seminar",
		},
		{
			name:            "time order validation error",
			field:           "entry",
			message:         "start time must be before end time",
			expectedError:   "validation error: entry - start time must be before end time",
			expectedField:   "entry",
			expectedMessage: "start time must be before end time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := app.NewValidationError(tt.field, tt.message)

			assert.Equal(t, tt.expectedField, err.Field)
			assert.Equal(t, tt.expectedMessage, err.Message)
			assert.Equal(t, tt.expectedError, err.Error())
		})
	}
}

func TestIsValidationErrorSuccess(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "is ValidationError",
			err:      app.NewValidationError("field", "message"),
			expected: true,
		},
		{
			name:     "wrapped ValidationError",
			err:      fmt.Errorf("wrapped: %w", app.NewValidationError("field", "message")),
			expected: true,
		},
		{
			name:     "not ValidationError - generic error",
			err:      errors.New("generic error"),
			expected: false,
		},
		{
			name:     "not ValidationError - nil",
			err:      nil,
			expected: false,
		},
		{
			name:     "not ValidationError - slot resolution error",
			err:      app.NewSlotResolutionError([]string{"bad"}),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, app.IsValidationError(tt.err))
		})
	}
}

func TestSlotResolutionError(t *testing.T) {
	messages := []string{
		`Invalid slot "Z9" for subject "Data Structures"`,
		`Invalid slot "Q7" for subject "Networks"`,
	}

	err := app.NewSlotResolutionError(messages)
	messages[0] = "mutated"

	assert.Equal(t, `Invalid slot "Z9" for subject "Data Structures"`, err.Messages[0])
	assert.Equal(t,
		`slot resolution failed: Invalid slot "Z9" for subject "Data Structures"; Invalid slot "Q7" for subject "Networks"`,
		err.Error(),
	)
	assert.True(t, app.IsSlotResolutionError(fmt.Errorf("register: %w", err)))
	assert.False(t, app.IsSlotResolutionError(errors.New("other")))
}
