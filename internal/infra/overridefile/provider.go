// Package overridefile serves day-order overrides from a local YAML file.
//
// The file looks like:
//
//	overrides:
//	  - date: "2026-10-17"
//	    day: Thursday
//	  - date: "2026-10-24"
//	    day: Monday
//	    user_id: 01912345-6789-7abc-8def-0123456789ab
//
// An entry without user_id applies to every user.
package overridefile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

var ErrDuplicateDate = errors.New("duplicate override date")

type fileEntry struct {
	Date   string `yaml:"date"`
	Day    string `yaml:"day"`
	UserID string `yaml:"user_id"`
}

type fileContent struct {
	Overrides []fileEntry `yaml:"overrides"`
}

type overrideKey struct {
	userID string
	date   string
}

// Provider implements domain.DayOverrideProvider over an in-memory table
// parsed once at construction.
type Provider struct {
	days map[overrideKey]domain.Weekday
}

var _ domain.DayOverrideProvider = (*Provider)(nil)

// Load reads path. A missing file yields an empty provider.
func Load(path string) (*Provider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Warn("day override file not found, continuing without overrides",
				"path", path,
			)

			return &Provider{days: map[overrideKey]domain.Weekday{}}, nil
		}

		return nil, fmt.Errorf("failed to read day override file: %w", err)
	}

	p, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("day override file loaded",
		"path", path,
		"count", len(p.days),
	)

	return p, nil
}

func Parse(raw []byte) (*Provider, error) {
	var content fileContent
	if err := yaml.UnmarshalStrict(raw, &content); err != nil {
		return nil, fmt.Errorf("failed to parse day override file: %w", err)
	}

	days := make(map[overrideKey]domain.Weekday, len(content.Overrides))

	for i, e := range content.Overrides {
		t, err := domain.ParseCalendarDate(e.Date)
		if err != nil {
			return nil, fmt.Errorf("overrides[%d].date: %w", i, err)
		}

		day, err := domain.NewWeekday(e.Day)
		if err != nil {
			return nil, fmt.Errorf("overrides[%d].day: %w", i, err)
		}

		var userID string
		if e.UserID != "" {
			id, err := domain.UserIDFromString(e.UserID)
			if err != nil {
				return nil, fmt.Errorf("overrides[%d].user_id: %w", i, err)
			}

			userID = id.String()
		}

		key := overrideKey{userID: userID, date: domain.CalendarDate(t)}
		if _, ok := days[key]; ok {
			return nil, fmt.Errorf("overrides[%d]: %w: %s", i, ErrDuplicateDate, key.date)
		}

		days[key] = day
	}

	return &Provider{days: days}, nil
}

// OverrideDay prefers a user-specific entry over a global one.
func (p *Provider) OverrideDay(_ context.Context, userID domain.UserID, date string) (domain.Weekday, bool, error) {
	if day, ok := p.days[overrideKey{userID: userID.String(), date: date}]; ok {
		return day, true, nil
	}

	day, ok := p.days[overrideKey{date: date}]

	return day, ok, nil
}

func (p *Provider) Len() int {
	return len(p.days)
}
