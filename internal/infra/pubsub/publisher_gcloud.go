//go:build gcloud

package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-googlecloud/pkg/googlecloud"
	"github.com/ThreeDotsLabs/watermill/message"
)

type GCloudPublisher struct {
	publisher message.Publisher
	logger    watermill.LoggerAdapter
}

type GCloudPublisherConfig struct {
	ProjectID string
}

func NewGCloudPublisher(ctx context.Context, cfg GCloudPublisherConfig) (*GCloudPublisher, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	publisher, err := googlecloud.NewPublisher(
		googlecloud.PublisherConfig{
			ProjectID: cfg.ProjectID,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Cloud publisher: %w", err)
	}

	return &GCloudPublisher{
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (p *GCloudPublisher) PublishClassReminder(ctx context.Context, event ClassReminderEvent) error {
	msg, err := newEventMessage(ctx, eventTypeClassReminder, event.UserID, event)
	if err != nil {
		return err
	}

	msg.Metadata.Set("entry_id", event.EntryID)

	return p.publish(ctx, TopicClassReminder, msg)
}

func (p *GCloudPublisher) PublishSubscriptionExpired(ctx context.Context, event SubscriptionExpiredEvent) error {
	msg, err := newEventMessage(ctx, eventTypeSubscriptionExpired, event.UserID, event)
	if err != nil {
		return err
	}

	return p.publish(ctx, TopicSubscriptionExpired, msg)
}

func (p *GCloudPublisher) publish(ctx context.Context, topic string, msg *message.Message) error {
	if err := p.publisher.Publish(topic, msg); err != nil {
		slog.ErrorContext(ctx, "failed to publish event",
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	slog.DebugContext(ctx, "published event",
		slog.String("topic", topic),
		slog.String("message_id", msg.UUID),
	)
	return nil
}

func (p *GCloudPublisher) Close() error {
	return p.publisher.Close()
}
