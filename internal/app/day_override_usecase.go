package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

type CreateDayOverrideInput struct {
	UserID string
	Date   string
	Day    string
}

type ListDayOverridesInput struct {
	UserID string
}

type DeleteDayOverrideInput struct {
	UserID string
	Date   string
}

type DayOverrideOutput struct {
	Date      string
	Day       string
	CreatedAt time.Time
}

type DayOverridesOutput struct {
	Overrides []DayOverrideOutput
}

type DayOverrideUseCase interface {
	CreateDayOverride(ctx context.Context, input CreateDayOverrideInput) (DayOverrideOutput, error)
	ListDayOverrides(ctx context.Context, input ListDayOverridesInput) (DayOverridesOutput, error)
	DeleteDayOverride(ctx context.Context, input DeleteDayOverrideInput) error
}

type dayOverrideUseCaseImpl struct {
	repo domain.DayOverrideRepository
}

func NewDayOverrideUseCase(repo domain.DayOverrideRepository) DayOverrideUseCase {
	return &dayOverrideUseCaseImpl{
		repo: repo,
	}
}

func (uc *dayOverrideUseCaseImpl) CreateDayOverride(ctx context.Context, input CreateDayOverrideInput) (DayOverrideOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return DayOverrideOutput{}, NewValidationError("user_id", err.Error())
	}

	day, err := domain.NewWeekday(input.Day)
	if err != nil {
		return DayOverrideOutput{}, NewValidationError("day", err.Error())
	}

	override, err := domain.NewDayOverride(userID, input.Date, day)
	if err != nil {
		return DayOverrideOutput{}, NewValidationError("date", err.Error())
	}

	if err := uc.repo.Create(ctx, override); err != nil {
		if errors.Is(err, domain.ErrDayOverrideExists) {
			return DayOverrideOutput{}, fmt.Errorf("%w: %v", ErrAlreadyExists, err)
		}

		slog.ErrorContext(ctx, "failed to create day override",
			"error", err,
			"user_id", input.UserID,
			"date", input.Date,
		)

		return DayOverrideOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "day override created",
		"user_id", input.UserID,
		"date", input.Date,
		"day", day.String(),
	)

	return fromDayOverride(override), nil
}

func (uc *dayOverrideUseCaseImpl) ListDayOverrides(ctx context.Context, input ListDayOverridesInput) (DayOverridesOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return DayOverridesOutput{}, NewValidationError("user_id", err.Error())
	}

	overrides, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list day overrides",
			"error", err,
			"user_id", input.UserID,
		)

		return DayOverridesOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	outputs := make([]DayOverrideOutput, 0, len(overrides))
	for _, o := range overrides {
		outputs = append(outputs, fromDayOverride(o))
	}

	return DayOverridesOutput{Overrides: outputs}, nil
}

func (uc *dayOverrideUseCaseImpl) DeleteDayOverride(ctx context.Context, input DeleteDayOverrideInput) error {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return NewValidationError("user_id", err.Error())
	}

	if _, err := domain.ParseCalendarDate(input.Date); err != nil {
		return NewValidationError("date", err.Error())
	}

	if err := uc.repo.Delete(ctx, userID, input.Date); err != nil {
		if errors.Is(err, domain.ErrDayOverrideNotFound) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to delete day override",
			"error", err,
			"user_id", input.UserID,
			"date", input.Date,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return nil
}

func fromDayOverride(o *domain.DayOverride) DayOverrideOutput {
	return DayOverrideOutput{
		Date:      o.Date(),
		Day:       o.Day().String(),
		CreatedAt: o.CreatedAt(),
	}
}
