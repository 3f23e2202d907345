package app

import (
	"context"
	"time"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

// TodaySchedule loads the entries a user has on the effective day for a
// given instant, honoring day-order overrides and weekend remapping.
type TodaySchedule struct {
	repo domain.ScheduleEntryRepository
	days *domain.DayResolver
}

func NewTodaySchedule(repo domain.ScheduleEntryRepository, days *domain.DayResolver) *TodaySchedule {
	return &TodaySchedule{
		repo: repo,
		days: days,
	}
}

// Entries returns the effective weekday and the entries sorted by start
// time. now is converted into the resolver's location first so that the
// calendar date and the wall-clock comparison agree.
func (s *TodaySchedule) Entries(ctx context.Context, userID domain.UserID, now time.Time) (domain.Weekday, []*domain.ScheduleEntry, error) {
	local := now.In(s.days.Location())

	day, err := s.days.ResolveDay(ctx, userID, local)
	if err != nil {
		return "", nil, err
	}

	entries, err := s.repo.ListByUserAndDay(ctx, userID, day)
	if err != nil {
		return "", nil, err
	}

	sortEntries(entries)

	return day, entries, nil
}

func (s *TodaySchedule) Location() *time.Location {
	return s.days.Location()
}
