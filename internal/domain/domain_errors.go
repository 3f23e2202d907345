package domain

import "errors"

var (
	ErrEntryNotFound  = errors.New("schedule entry not found")
	ErrInvalidEntryID = errors.New("invalid schedule entry ID")

	ErrInvalidWeekday     = errors.New("invalid weekday")
	ErrInvalidClockTime   = errors.New("invalid clock time: expected HH:MM")
	ErrInvalidTimeOrder   = errors.New("invalid time range: start must be before end")
	ErrInvalidSessionType = errors.New("invalid session type")
	ErrInvalidEntrySource = errors.New("invalid entry source")
	ErrEmptySubjectName   = errors.New("subject name cannot be empty")
	ErrNegativeCredit     = errors.New("credit cannot be negative")

	ErrSubscriptionNotFound = errors.New("push subscription not found")
	ErrSubscriptionGone     = errors.New("push subscription is no longer valid")
	ErrEmptyEndpoint        = errors.New("push subscription endpoint cannot be empty")
	ErrEmptyKeys            = errors.New("push subscription keys cannot be empty")

	ErrDayOverrideNotFound = errors.New("day override not found")
	ErrDayOverrideExists   = errors.New("day override already exists for date")
	ErrInvalidDate         = errors.New("invalid date: expected YYYY-MM-DD")
)
