package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
	"github.com/KasumiMercury/primind-class-remind/internal/infra/pubsub"
)

// Notifier dispatches a due reminder to the student. Failures are logged by
// the caller and never retried.
type Notifier interface {
	Notify(ctx context.Context, userID domain.UserID, reminder DueReminder) error
}

type publisherNotifier struct {
	publisher pubsub.Publisher
}

// NewPublisherNotifier hands reminders to a relay over the message bus.
func NewPublisherNotifier(publisher pubsub.Publisher) Notifier {
	return &publisherNotifier{publisher: publisher}
}

func (n *publisherNotifier) Notify(ctx context.Context, userID domain.UserID, reminder DueReminder) error {
	d := reminder.Entry.Details()

	return n.publisher.PublishClassReminder(ctx, pubsub.ClassReminderEvent{
		UserID:      userID.String(),
		EntryID:     reminder.Entry.ID().String(),
		Date:        reminder.Key.Date,
		SubjectName: d.SubjectName,
		SubjectCode: d.SubjectCode,
		RoomNumber:  d.RoomNumber,
		Day:         d.Day.String(),
		StartTime:   d.StartTime,
		EndTime:     d.EndTime,
		Title:       reminder.Payload.Title,
		Body:        reminder.Payload.Body,
		URL:         reminder.Payload.URL,
		Tag:         reminder.Tag,
		NotifiedAt:  time.Now(),
	})
}

type logNotifier struct{}

// NewLogNotifier writes reminders to the log only. Used when no message
// bus is configured.
func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Notify(ctx context.Context, userID domain.UserID, reminder DueReminder) error {
	slog.InfoContext(ctx, reminder.Payload.Title,
		slog.String("event", "reminder.notify"),
		slog.String("user_id", userID.String()),
		slog.String("entry_id", reminder.Entry.ID().String()),
		slog.String("body", reminder.Payload.Body),
		slog.String("tag", reminder.Tag),
	)

	return nil
}
