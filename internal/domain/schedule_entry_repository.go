package domain

import (
	"context"
)

type ScheduleEntryRepository interface {
	Save(ctx context.Context, entry *ScheduleEntry) error
	FindByID(ctx context.Context, id EntryID) (*ScheduleEntry, error)
	ListByUser(ctx context.Context, userID UserID) ([]*ScheduleEntry, error)
	ListByUserAndDay(ctx context.Context, userID UserID, day Weekday) ([]*ScheduleEntry, error)
	Update(ctx context.Context, entry *ScheduleEntry) error
	Delete(ctx context.Context, id EntryID) error
	DeleteByUserAndSource(ctx context.Context, userID UserID, source EntrySource) (int64, error)
	WithTx(ctx context.Context, fn func(repo ScheduleEntryRepository) error) error
}

type DayOverrideRepository interface {
	DayOverrideProvider
	Create(ctx context.Context, override *DayOverride) error
	ListByUser(ctx context.Context, userID UserID) ([]*DayOverride, error)
	Delete(ctx context.Context, userID UserID, date string) error
}
