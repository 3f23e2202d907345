package domain

import (
	"github.com/google/uuid"
)

type EntryID struct {
	value uuid.UUID
}

func NewEntryID() EntryID {
	return EntryID{value: uuid.New()}
}

func EntryIDFromString(s string) (EntryID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return EntryID{}, ErrInvalidEntryID
	}

	return EntryID{value: id}, nil
}

func EntryIDFromUUID(id uuid.UUID) EntryID {
	return EntryID{value: id}
}

func (e EntryID) String() string {
	return e.value.String()
}

func (e EntryID) UUID() uuid.UUID {
	return e.value
}

func (e EntryID) IsZero() bool {
	return e.value == uuid.Nil
}

func (e EntryID) Equals(other EntryID) bool {
	return e.value == other.value
}
