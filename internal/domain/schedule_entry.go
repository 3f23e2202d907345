package domain

import (
	"fmt"
	"time"
)

type EntrySource string

const (
	SourceManual EntrySource = "manual"
	SourceFFCS   EntrySource = "ffcs"
)

func NewEntrySource(s string) (EntrySource, error) {
	switch EntrySource(s) {
	case SourceManual, SourceFFCS:
		return EntrySource(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidEntrySource, s)
	}
}

// ScheduleEntry is one weekly class meeting owned by a user.
type ScheduleEntry struct {
	id        EntryID
	userID    UserID
	source    EntrySource
	details   EntryDetails
	createdAt time.Time
	updatedAt time.Time
}

func NewScheduleEntry(userID UserID, source EntrySource, details EntryDetails) (*ScheduleEntry, error) {
	if _, err := NewEntrySource(string(source)); err != nil {
		return nil, err
	}

	if err := details.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()

	return &ScheduleEntry{
		id:        NewEntryID(),
		userID:    userID,
		source:    source,
		details:   details,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstitute rebuilds an entry from storage without validation; stored
// rows may predate validation and are checked where they are consumed.
func Reconstitute(
	id EntryID,
	userID UserID,
	source EntrySource,
	details EntryDetails,
	createdAt time.Time,
	updatedAt time.Time,
) *ScheduleEntry {
	return &ScheduleEntry{
		id:        id,
		userID:    userID,
		source:    source,
		details:   details,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update replaces the entry's details. Source and identity never change.
func (e *ScheduleEntry) Update(details EntryDetails) error {
	if err := details.Validate(); err != nil {
		return err
	}

	e.details = details
	e.updatedAt = time.Now()

	return nil
}

func (e *ScheduleEntry) ID() EntryID {
	return e.id
}

func (e *ScheduleEntry) UserID() UserID {
	return e.userID
}

func (e *ScheduleEntry) Source() EntrySource {
	return e.source
}

func (e *ScheduleEntry) Details() EntryDetails {
	return e.details
}

func (e *ScheduleEntry) Day() Weekday {
	return e.details.Day
}

func (e *ScheduleEntry) StartTime() string {
	return e.details.StartTime
}

func (e *ScheduleEntry) EndTime() string {
	return e.details.EndTime
}

func (e *ScheduleEntry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *ScheduleEntry) UpdatedAt() time.Time {
	return e.updatedAt
}

// SortKey orders entries by weekday, then start time. Unparsable start
// times sort after valid ones on the same day.
func (e *ScheduleEntry) SortKey() (int, int) {
	start, err := ParseClockTime(e.details.StartTime)
	if err != nil {
		return e.details.Day.Index(), 24 * 60
	}

	return e.details.Day.Index(), start.Hour()*60 + start.Minute()
}
