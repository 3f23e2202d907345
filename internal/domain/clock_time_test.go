package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

func TestParseClockTimeSuccess(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedHour   int
		expectedMinute int
		expectedString string
	}{
		{"morning", "08:00", 8, 0, "08:00"},
		{"irregular lab boundary", "08:51", 8, 51, "08:51"},
		{"single digit hour", "9:40", 9, 40, "09:40"},
		{"surrounding spaces", " 18:31 ", 18, 31, "18:31"},
		{"midnight", "00:00", 0, 0, "00:00"},
		{"last minute", "23:59", 23, 59, "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := domain.ParseClockTime(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedHour, c.Hour())
			assert.Equal(t, tt.expectedMinute, c.Minute())
			assert.Equal(t, tt.expectedString, c.String())
		})
	}
}

func TestParseClockTimeError(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"no colon", "0800"},
		{"hour out of range", "24:00"},
		{"minute out of range", "08:60"},
		{"single digit minute", "08:5"},
		{"letters", "ab:cd"},
		{"seconds", "08:00:00"},
		{"negative", "-1:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseClockTime(tt.input)

			assert.ErrorIs(t, err, domain.ErrInvalidClockTime)
		})
	}
}

func TestClockTimeOn(t *testing.T) {
	loc := time.FixedZone("IST", 5*60*60+30*60)
	day := time.Date(2026, time.October, 13, 22, 15, 7, 0, loc)

	got := domain.MustClockTime("08:51").On(day)

	assert.Equal(t, time.Date(2026, time.October, 13, 8, 51, 0, 0, loc), got)
}

func TestClockTimeBefore(t *testing.T) {
	assert.True(t, domain.MustClockTime("08:50").Before(domain.MustClockTime("08:51")))
	assert.False(t, domain.MustClockTime("08:51").Before(domain.MustClockTime("08:51")))
}
