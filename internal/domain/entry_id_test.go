package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

func TestEntryIDFromStringSuccess(t *testing.T) {
	raw := uuid.New()

	id, err := domain.EntryIDFromString(raw.String())

	assert.NoError(t, err)
	assert.Equal(t, raw, id.UUID())
	assert.True(t, id.Equals(domain.EntryIDFromUUID(raw)))
}

func TestEntryIDFromStringError(t *testing.T) {
	for _, input := range []string{"", "nope", "550e8400-e29b-41d4"} {
		t.Run(input, func(t *testing.T) {
			_, err := domain.EntryIDFromString(input)

			assert.ErrorIs(t, err, domain.ErrInvalidEntryID)
		})
	}
}

func TestNewEntryIDIsUnique(t *testing.T) {
	a := domain.NewEntryID()
	b := domain.NewEntryID()

	assert.False(t, a.IsZero())
	assert.False(t, a.Equals(b))
}
