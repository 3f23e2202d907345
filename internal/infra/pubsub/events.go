package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/KasumiMercury/primind-class-remind/internal/observability/tracing"
)

const (
	TopicClassReminder       = "class.reminder"
	TopicSubscriptionExpired = "subscription.expired"

	eventTypeClassReminder       = "class.reminder.due"
	eventTypeSubscriptionExpired = "subscription.expired"
)

// ClassReminderEvent announces a reminder that became due for a user.
// Relays turn it into a local or service-worker notification.
type ClassReminderEvent struct {
	UserID      string    `json:"user_id"`
	EntryID     string    `json:"entry_id"`
	Date        string    `json:"date"`
	SubjectName string    `json:"subject_name"`
	SubjectCode string    `json:"subject_code"`
	RoomNumber  string    `json:"room_number"`
	Day         string    `json:"day"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	URL         string    `json:"url"`
	Tag         string    `json:"tag"`
	NotifiedAt  time.Time `json:"notified_at"`
}

// SubscriptionExpiredEvent is emitted after a push endpoint answered 410
// and the stored subscription was cleared.
type SubscriptionExpiredEvent struct {
	UserID     string    `json:"user_id"`
	Endpoint   string    `json:"endpoint"`
	StatusCode int       `json:"status_code"`
	ExpiredAt  time.Time `json:"expired_at"`
}

func newEventMessage(ctx context.Context, eventType, userID string, event any) (*message.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_type", eventType)
	msg.Metadata.Set("user_id", userID)
	msg.Metadata.Set("content_type", "application/json")

	carrier := make(map[string]string)
	tracing.InjectToMap(ctx, carrier)

	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}

	msg.SetContext(ctx)

	return msg, nil
}
