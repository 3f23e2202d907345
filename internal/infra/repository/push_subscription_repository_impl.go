package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

type pushSubscriptionRepositoryImpl struct {
	db *gorm.DB
}

func NewPushSubscriptionRepository(db *gorm.DB) domain.PushSubscriptionRepository {
	return &pushSubscriptionRepositoryImpl{
		db: db,
	}
}

// Save stores the user's only subscription, replacing any previous one.
func (r *pushSubscriptionRepositoryImpl) Save(ctx context.Context, userID domain.UserID, sub domain.PushSubscription) error {
	now := time.Now()
	m := &PushSubscriptionModel{
		UserID:    userID.String(),
		Endpoint:  sub.Endpoint(),
		P256dh:    sub.P256dh(),
		Auth:      sub.Auth(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"endpoint", "p256dh", "auth", "updated_at"}),
	}).Create(m)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to save push subscription",
			"user_id", userID.String(),
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *pushSubscriptionRepositoryImpl) FindByUserID(ctx context.Context, userID domain.UserID) (domain.PushSubscription, error) {
	var m PushSubscriptionModel

	result := r.db.WithContext(ctx).Where("user_id = ?", userID.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domain.PushSubscription{}, domain.ErrSubscriptionNotFound
		}

		return domain.PushSubscription{}, result.Error
	}

	us, err := m.ToEntity()
	if err != nil {
		return domain.PushSubscription{}, err
	}

	return us.Subscription, nil
}

// ListWithSubscription skips rows that fail to convert so one corrupt
// subscription does not hide every other user from the worker.
func (r *pushSubscriptionRepositoryImpl) ListWithSubscription(ctx context.Context) ([]domain.UserSubscription, error) {
	var models []PushSubscriptionModel

	result := r.db.WithContext(ctx).Order("user_id ASC").Find(&models)
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to list push subscriptions",
			"error", result.Error,
		)

		return nil, result.Error
	}

	subs := make([]domain.UserSubscription, 0, len(models))
	for _, m := range models {
		us, err := m.ToEntity()
		if err != nil {
			slog.WarnContext(ctx, "skipping malformed push subscription",
				"user_id", m.UserID,
				"error", err,
			)

			continue
		}

		subs = append(subs, us)
	}

	return subs, nil
}

func (r *pushSubscriptionRepositoryImpl) Clear(ctx context.Context, userID domain.UserID) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID.String()).Delete(&PushSubscriptionModel{})
	if result.Error != nil {
		slog.ErrorContext(ctx, "failed to clear push subscription",
			"user_id", userID.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrSubscriptionNotFound
	}

	return nil
}
