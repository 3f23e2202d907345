package pubsub

import (
	"context"
	"io"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock.go -package=pubsub

type Publisher interface {
	PublishClassReminder(ctx context.Context, event ClassReminderEvent) error
	PublishSubscriptionExpired(ctx context.Context, event SubscriptionExpiredEvent) error
	io.Closer
}
