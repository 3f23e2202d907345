package overridefile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
	"github.com/KasumiMercury/primind-class-remind/internal/infra/overridefile"
)

const (
	alice = "01912345-6789-7abc-8def-0123456789ab"
	bob   = "01912345-6789-7abc-8def-0123456789ac"
)

func mustUser(t *testing.T, s string) domain.UserID {
	t.Helper()

	id, err := domain.UserIDFromString(s)
	require.NoError(t, err)

	return id
}

func TestOverrideDayLookup(t *testing.T) {
	p, err := overridefile.Parse([]byte(`
overrides:
  - date: "2026-10-17"
    day: Thursday
  - date: "2026-10-17"
    day: Monday
    user_id: ` + alice + `
  - date: "2026-10-24"
    day: friday
`))
	require.NoError(t, err)
	assert.Equal(t, 3, p.Len())

	tests := []struct {
		name     string
		userID   string
		date     string
		expected domain.Weekday
		ok       bool
	}{
		{name: "user specific wins", userID: alice, date: "2026-10-17", expected: domain.Monday, ok: true},
		{name: "global applies to others", userID: bob, date: "2026-10-17", expected: domain.Thursday, ok: true},
		{name: "day name is case insensitive", userID: bob, date: "2026-10-24", expected: domain.Friday, ok: true},
		{name: "no override", userID: alice, date: "2026-10-18", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, ok, err := p.OverrideDay(context.Background(), mustUser(t, tt.userID), tt.date)

			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, day)
		})
	}
}

func TestParseRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "bad date", raw: "overrides:\n  - date: \"17/10/2026\"\n    day: Monday\n"},
		{name: "bad day", raw: "overrides:\n  - date: \"2026-10-17\"\n    day: Funday\n"},
		{name: "bad user", raw: "overrides:\n  - date: \"2026-10-17\"\n    day: Monday\n    user_id: nope\n"},
		{name: "unknown field", raw: "overrides:\n  - date: \"2026-10-17\"\n    weekday: Monday\n"},
		{name: "duplicate", raw: "overrides:\n  - date: \"2026-10-17\"\n    day: Monday\n  - date: \"2026-10-17\"\n    day: Tuesday\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := overridefile.Parse([]byte(tt.raw))

			assert.Error(t, err)
		})
	}
}

func TestParseDuplicateIsSentinel(t *testing.T) {
	_, err := overridefile.Parse([]byte("overrides:\n  - date: \"2026-10-17\"\n    day: Monday\n  - date: \"2026-10-17\"\n    day: Tuesday\n"))

	assert.ErrorIs(t, err, overridefile.ErrDuplicateDate)
}

func TestLoad(t *testing.T) {
	t.Run("missing file is empty", func(t *testing.T) {
		p, err := overridefile.Load(filepath.Join(t.TempDir(), "absent.yaml"))

		require.NoError(t, err)
		assert.Equal(t, 0, p.Len())
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "overrides.yaml")
		require.NoError(t, os.WriteFile(path, []byte("overrides:\n  - date: \"2026-10-17\"\n    day: Wednesday\n"), 0o600))

		p, err := overridefile.Load(path)
		require.NoError(t, err)

		day, ok, err := p.OverrideDay(context.Background(), mustUser(t, alice), "2026-10-17")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, domain.Wednesday, day)
	})

	t.Run("works with the day resolver", func(t *testing.T) {
		p, err := overridefile.Parse([]byte("overrides:\n  - date: \"2026-10-17\"\n    day: Tuesday\n"))
		require.NoError(t, err)

		resolver, err := domain.NewDayResolver(p, nil, nil)
		require.NoError(t, err)

		day, err := resolver.ResolveDay(context.Background(), mustUser(t, bob), mustDate(t, "2026-10-17"))
		require.NoError(t, err)
		assert.Equal(t, domain.Tuesday, day)
	})
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := domain.ParseCalendarDate(s)
	require.NoError(t, err)

	return d.Add(12 * time.Hour)
}
