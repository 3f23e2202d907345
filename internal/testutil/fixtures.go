package testutil

import (
	"testing"

	"github.com/google/uuid"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

func NewUserID(t *testing.T) domain.UserID {
	t.Helper()

	id, err := domain.UserIDFromUUID(uuid.Must(uuid.NewV7()))
	if err != nil {
		t.Fatalf("failed to create user id: %v", err)
	}

	return id
}

// EntryDetails returns valid theory details; override fields on the copy.
func EntryDetails(day domain.Weekday, start, end string) domain.EntryDetails {
	return domain.EntryDetails{
		SubjectName: "Data Structures",
		SubjectCode: "CSE2001",
		SessionType: domain.SessionTheory,
		SlotCode:    "A1",
		SlotLabel:   "A1",
		RoomNumber:  "SJT-101",
		Credit:      4,
		Day:         day,
		StartTime:   start,
		EndTime:     end,
	}
}

func NewEntry(t *testing.T, userID domain.UserID, source domain.EntrySource, details domain.EntryDetails) *domain.ScheduleEntry {
	t.Helper()

	entry, err := domain.NewScheduleEntry(userID, source, details)
	if err != nil {
		t.Fatalf("failed to create schedule entry: %v", err)
	}

	return entry
}
