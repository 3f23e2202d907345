package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

const pgUniqueViolation = "23505"

type dayOverrideRepositoryImpl struct {
	db *gorm.DB
}

func NewDayOverrideRepository(db *gorm.DB) domain.DayOverrideRepository {
	return &dayOverrideRepositoryImpl{
		db: db,
	}
}

func (r *dayOverrideRepositoryImpl) Create(ctx context.Context, override *domain.DayOverride) error {
	m := &DayOverrideModel{
		UserID:    override.UserID().String(),
		Date:      override.Date(),
		Day:       override.Day().String(),
		CreatedAt: override.CreatedAt(),
	}

	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrDayOverrideExists
		}

		slog.ErrorContext(ctx, "failed to create day override",
			"user_id", m.UserID,
			"date", m.Date,
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *dayOverrideRepositoryImpl) ListByUser(ctx context.Context, userID domain.UserID) ([]*domain.DayOverride, error) {
	var models []DayOverrideModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID.String()).
		Order("date ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	overrides := make([]*domain.DayOverride, 0, len(models))
	for _, m := range models {
		o, err := m.ToEntity()
		if err != nil {
			return nil, err
		}

		overrides = append(overrides, o)
	}

	return overrides, nil
}

func (r *dayOverrideRepositoryImpl) Delete(ctx context.Context, userID domain.UserID, date string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID.String(), date).
		Delete(&DayOverrideModel{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrDayOverrideNotFound
	}

	return nil
}

func (r *dayOverrideRepositoryImpl) OverrideDay(ctx context.Context, userID domain.UserID, date string) (domain.Weekday, bool, error) {
	var m DayOverrideModel

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID.String(), date).
		First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", false, nil
		}

		return "", false, result.Error
	}

	day, err := domain.NewWeekday(m.Day)
	if err != nil {
		return "", false, err
	}

	return day, true, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == pgUniqueViolation
}
