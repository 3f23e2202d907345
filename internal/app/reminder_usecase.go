package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

type EvaluateRemindersInput struct {
	UserID string
	// Now defaults to the current time when zero.
	Now      time.Time
	Notified []string
}

type DueReminderOutput struct {
	Entry EntryOutput
	Key   string
	Tag   string
	Title string
	Body  string
	URL   string
}

type EvaluateRemindersOutput struct {
	Date     string
	Day      string
	Due      []DueReminderOutput
	Notified []string
}

// ReminderUseCase evaluates reminders without keeping any state; the caller
// carries the notified keys between calls.
type ReminderUseCase interface {
	EvaluateReminders(ctx context.Context, input EvaluateRemindersInput) (EvaluateRemindersOutput, error)
}

type reminderUseCaseImpl struct {
	schedule  ScheduleSource
	evaluator *domain.ReminderEvaluator
	url       string
}

func NewReminderUseCase(schedule ScheduleSource, window domain.ReminderWindow, url string) ReminderUseCase {
	return &reminderUseCaseImpl{
		schedule:  schedule,
		evaluator: domain.NewReminderEvaluator(window),
		url:       url,
	}
}

func (uc *reminderUseCaseImpl) EvaluateReminders(ctx context.Context, input EvaluateRemindersInput) (EvaluateRemindersOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return EvaluateRemindersOutput{}, NewValidationError("user_id", err.Error())
	}

	keys := make([]domain.NotificationKey, 0, len(input.Notified))
	for i, raw := range input.Notified {
		key, err := domain.ParseNotificationKey(raw)
		if err != nil {
			return EvaluateRemindersOutput{}, NewValidationError(fmt.Sprintf("notified[%d]", i), err.Error())
		}

		keys = append(keys, key)
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	now = now.In(uc.schedule.Location())

	day, entries, err := uc.schedule.Entries(ctx, userID, now)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load entries for evaluation",
			"error", err,
			"user_id", input.UserID,
		)

		return EvaluateRemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	notified := domain.NewNotifiedSet(keys...)
	notified.Prune(now)

	eval := uc.evaluator.Evaluate(now, entries, notified)

	due := make([]DueReminderOutput, 0, len(eval.ToNotify))
	for _, r := range buildDueReminders(now, eval.ToNotify, uc.url) {
		due = append(due, DueReminderOutput{
			Entry: FromEntity(r.Entry),
			Key:   r.Key.String(),
			Tag:   r.Tag,
			Title: r.Payload.Title,
			Body:  r.Payload.Body,
			URL:   r.Payload.URL,
		})
	}

	updated := make([]string, 0, eval.Notified.Len())
	for _, k := range eval.Notified.Keys() {
		updated = append(updated, k.String())
	}

	slog.DebugContext(ctx, "reminders evaluated",
		"user_id", input.UserID,
		"day", day.String(),
		"entry_count", len(entries),
		"due_count", len(due),
	)

	return EvaluateRemindersOutput{
		Date:     domain.CalendarDate(now),
		Day:      day.String(),
		Due:      due,
		Notified: updated,
	}, nil
}
