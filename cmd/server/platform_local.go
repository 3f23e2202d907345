//go:build !gcloud

package main

import (
	"context"
	"log/slog"

	"github.com/KasumiMercury/primind-class-remind/internal/config"
	"github.com/KasumiMercury/primind-class-remind/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-class-remind/internal/observability"
	"github.com/KasumiMercury/primind-class-remind/internal/observability/logging"
)

func initPublisher(ctx context.Context, cfg *config.Config) (pubsub.Publisher, error) {
	if cfg.PubSub.NatsURL == "" {
		slog.Warn("NATS_URL not set, event publishing disabled")
		return nil, nil
	}

	publisher, err := pubsub.NewNATSPublisherWithStream(ctx, pubsub.NATSPublisherConfig{
		URL: cfg.PubSub.NatsURL,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("NATS publisher initialized", "url", cfg.PubSub.NatsURL)

	return publisher, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:    "class-remind",
			Version: Version,
		},
		Environment:   logging.EnvDev,
		LogLevel:      cfg.Log.Level,
		SamplingRate:  1.0,
		DefaultModule: logging.Module("timetable"),
	})
}
