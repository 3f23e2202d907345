package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

type scheduleEntryRepositoryImpl struct {
	db *gorm.DB
}

func NewScheduleEntryRepository(db *gorm.DB) domain.ScheduleEntryRepository {
	return &scheduleEntryRepositoryImpl{
		db: db,
	}
}

func (r *scheduleEntryRepositoryImpl) Save(ctx context.Context, entry *domain.ScheduleEntry) error {
	slog.DebugContext(ctx, "saving schedule entry to database",
		"entry_id", entry.ID().String(),
	)

	m := FromEntity(entry)

	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to save schedule entry to database",
			"entry_id", entry.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *scheduleEntryRepositoryImpl) FindByID(ctx context.Context, id domain.EntryID) (*domain.ScheduleEntry, error) {
	slog.DebugContext(ctx, "finding schedule entry by ID",
		"entry_id", id.String(),
	)

	var m ScheduleEntryModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntryNotFound
		}

		slog.ErrorContext(ctx, "failed to find schedule entry by ID",
			"entry_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *scheduleEntryRepositoryImpl) ListByUser(ctx context.Context, userID domain.UserID) ([]*domain.ScheduleEntry, error) {
	slog.DebugContext(ctx, "listing schedule entries by user",
		"user_id", userID.String(),
	)

	var models []ScheduleEntryModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to list schedule entries by user",
			"user_id", userID.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return toEntities(ctx, models)
}

func (r *scheduleEntryRepositoryImpl) ListByUserAndDay(ctx context.Context, userID domain.UserID, day domain.Weekday) ([]*domain.ScheduleEntry, error) {
	slog.DebugContext(ctx, "listing schedule entries by user and day",
		"user_id", userID.String(),
		"day", day.String(),
	)

	var models []ScheduleEntryModel

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND day = ?", userID.String(), day.String()).
		Order("start_time ASC").
		Find(&models)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to list schedule entries by user and day",
			"user_id", userID.String(),
			"day", day.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return toEntities(ctx, models)
}

func (r *scheduleEntryRepositoryImpl) Update(ctx context.Context, entry *domain.ScheduleEntry) error {
	slog.DebugContext(ctx, "updating schedule entry in database",
		"entry_id", entry.ID().String(),
	)

	m := FromEntity(entry)

	// Select("*") writes zero values such as an emptied room number.
	result := r.db.WithContext(ctx).
		Model(&ScheduleEntryModel{}).
		Where("id = ?", m.ID).
		Select("*").
		Omit("id", "user_id", "source", "created_at").
		Updates(m)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to update schedule entry in database",
			"entry_id", entry.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

func (r *scheduleEntryRepositoryImpl) Delete(ctx context.Context, id domain.EntryID) error {
	slog.DebugContext(ctx, "deleting schedule entry from database",
		"entry_id", id.String(),
	)

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&ScheduleEntryModel{})
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to delete schedule entry from database",
			"entry_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

func (r *scheduleEntryRepositoryImpl) DeleteByUserAndSource(ctx context.Context, userID domain.UserID, source domain.EntrySource) (int64, error) {
	slog.DebugContext(ctx, "deleting schedule entries by user and source",
		"user_id", userID.String(),
		"source", string(source),
	)

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND source = ?", userID.String(), string(source)).
		Delete(&ScheduleEntryModel{})
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to delete schedule entries by user and source",
			"user_id", userID.String(),
			"source", string(source),
			"error", result.Error,
		)

		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *scheduleEntryRepositoryImpl) WithTx(ctx context.Context, fn func(repo domain.ScheduleEntryRepository) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		slog.ErrorContext(ctx, "failed to begin transaction",
			"error", tx.Error,
		)

		return tx.Error
	}

	txRepo := &scheduleEntryRepositoryImpl{db: tx}

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			slog.ErrorContext(ctx, "failed to rollback transaction",
				"error", rbErr,
				"original_error", err,
			)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		slog.ErrorContext(ctx, "failed to commit transaction",
			"error", err,
		)

		return err
	}

	return nil
}

func toEntities(ctx context.Context, models []ScheduleEntryModel) ([]*domain.ScheduleEntry, error) {
	entries := make([]*domain.ScheduleEntry, 0, len(models))
	for _, m := range models {
		entry, err := m.ToEntity()
		if err != nil {
			slog.ErrorContext(ctx, "failed to convert model to entity",
				"entry_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
