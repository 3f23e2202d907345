package app

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal error")
	ErrAlreadyExists = errors.New("resource already exists")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError

	return errors.As(err, &validationErr)
}

// SlotResolutionError blocks a registration while any slot code in the
// submitted courses is unknown. Messages holds one entry per unknown code.
type SlotResolutionError struct {
	Messages []string
}

func (e *SlotResolutionError) Error() string {
	return fmt.Sprintf("slot resolution failed: %s", strings.Join(e.Messages, "; "))
}

func NewSlotResolutionError(messages []string) *SlotResolutionError {
	return &SlotResolutionError{
		Messages: append([]string(nil), messages...),
	}
}

func IsSlotResolutionError(err error) bool {
	var resolutionErr *SlotResolutionError

	return errors.As(err, &resolutionErr)
}
