//go:build !gcloud

package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const streamName = "CLASS_REMIND_EVENTS"

type NATSPublisher struct {
	publisher message.Publisher
	logger    watermill.LoggerAdapter
}

type NATSPublisherConfig struct {
	URL string
}

// NewNATSPublisherWithStream provisions the event stream before creating
// the publisher, so events are retained even without a live consumer.
func NewNATSPublisherWithStream(ctx context.Context, cfg NATSPublisherConfig) (*NATSPublisher, error) {
	logger := watermill.NewSlogLogger(slog.Default())

	conn, err := nc.Connect(cfg.URL, nc.Timeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	defer conn.Close()

	js, err := jetstream.New(conn)
	if err != nil {
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	subjects := []string{TopicClassReminder, TopicSubscriptionExpired}

	_, err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:        streamName,
		Description: "Class reminder and push subscription events",
		Subjects:    subjects,
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      24 * time.Hour,
		MaxBytes:    100 * 1024 * 1024, // 100MB
		Storage:     jetstream.FileStorage,
		Replicas:    1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}

	slog.InfoContext(ctx, "NATS JetStream stream configured",
		slog.String("stream", streamName),
		slog.Any("subjects", subjects),
	)

	publisher, err := nats.NewPublisher(
		nats.PublisherConfig{
			URL:         cfg.URL,
			NatsOptions: []nc.Option{nc.Timeout(10 * time.Second)},
			JetStream: nats.JetStreamConfig{
				Disabled:      false,
				AutoProvision: false,
			},
			Marshaler: &nats.NATSMarshaler{},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create NATS publisher: %w", err)
	}

	return &NATSPublisher{
		publisher: publisher,
		logger:    logger,
	}, nil
}

func (p *NATSPublisher) PublishClassReminder(ctx context.Context, event ClassReminderEvent) error {
	msg, err := newEventMessage(ctx, eventTypeClassReminder, event.UserID, event)
	if err != nil {
		return err
	}

	msg.Metadata.Set("entry_id", event.EntryID)

	return p.publish(ctx, TopicClassReminder, msg)
}

func (p *NATSPublisher) PublishSubscriptionExpired(ctx context.Context, event SubscriptionExpiredEvent) error {
	msg, err := newEventMessage(ctx, eventTypeSubscriptionExpired, event.UserID, event)
	if err != nil {
		return err
	}

	return p.publish(ctx, TopicSubscriptionExpired, msg)
}

func (p *NATSPublisher) publish(ctx context.Context, topic string, msg *message.Message) error {
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

func (p *NATSPublisher) Close() error {
	return p.publisher.Close()
}
