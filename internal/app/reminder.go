package app

import (
	"context"
	"time"

	"github.com/KasumiMercury/primind-class-remind/internal/domain"
)

// ScheduleSource supplies the entries of the effective day for a user.
// TodaySchedule is the production implementation.
type ScheduleSource interface {
	Entries(ctx context.Context, userID domain.UserID, now time.Time) (domain.Weekday, []*domain.ScheduleEntry, error)
	Location() *time.Location
}

// DueReminder is one entry selected for notification together with the
// message shown to the student.
type DueReminder struct {
	Entry   *domain.ScheduleEntry
	Key     domain.NotificationKey
	Tag     string
	Payload domain.NotificationPayload
}

func buildDueReminders(now time.Time, entries []*domain.ScheduleEntry, url string) []DueReminder {
	reminders := make([]DueReminder, 0, len(entries))
	for _, entry := range entries {
		key := domain.NewNotificationKey(now, entry.ID())

		reminders = append(reminders, DueReminder{
			Entry:   entry,
			Key:     key,
			Tag:     domain.NotificationTag(key),
			Payload: domain.NewClassReminderPayload(entry, url),
		})
	}

	return reminders
}
