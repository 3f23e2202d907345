package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

type SaveSubscriptionInput struct {
	UserID   string
	Endpoint string
	P256dh   string
	Auth     string
}

type DeleteSubscriptionInput struct {
	UserID string
}

type SubscriptionUseCase interface {
	SaveSubscription(ctx context.Context, input SaveSubscriptionInput) error
	DeleteSubscription(ctx context.Context, input DeleteSubscriptionInput) error
}

type subscriptionUseCaseImpl struct {
	repo domain.PushSubscriptionRepository
}

func NewSubscriptionUseCase(repo domain.PushSubscriptionRepository) SubscriptionUseCase {
	return &subscriptionUseCaseImpl{
		repo: repo,
	}
}

func (uc *subscriptionUseCaseImpl) SaveSubscription(ctx context.Context, input SaveSubscriptionInput) error {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return NewValidationError("user_id", err.Error())
	}

	sub, err := domain.NewPushSubscription(input.Endpoint, input.P256dh, input.Auth)
	if err != nil {
		field := "keys"
		if errors.Is(err, domain.ErrEmptyEndpoint) {
			field = "endpoint"
		}

		return NewValidationError(field, err.Error())
	}

	if err := uc.repo.Save(ctx, userID, sub); err != nil {
		slog.ErrorContext(ctx, "failed to save push subscription",
			"error", err,
			"user_id", input.UserID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "push subscription saved",
		"user_id", input.UserID,
	)

	return nil
}

func (uc *subscriptionUseCaseImpl) DeleteSubscription(ctx context.Context, input DeleteSubscriptionInput) error {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return NewValidationError("user_id", err.Error())
	}

	if err := uc.repo.Clear(ctx, userID); err != nil {
		if !errors.Is(err, domain.ErrSubscriptionNotFound) {
			slog.ErrorContext(ctx, "failed to delete push subscription",
				"error", err,
				"user_id", input.UserID,
			)

			return fmt.Errorf("%w: %v", ErrInternalError, err)
		}

		slog.InfoContext(ctx, "push subscription not found for deletion (idempotency)",
			"user_id", input.UserID,
		)
	}

	return nil
}
