//go:build gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KasumiMercury/primind-class-remind/internal/config"
	"github.com/KasumiMercury/primind-class-remind/internal/infra/pubsub"
	"github.com/KasumiMercury/primind-class-remind/internal/observability"
	"github.com/KasumiMercury/primind-class-remind/internal/observability/logging"
)

func initPublisher(ctx context.Context, cfg *config.Config) (pubsub.Publisher, error) {
	publisher, err := pubsub.NewGCloudPublisher(ctx, pubsub.GCloudPublisherConfig{
		ProjectID: cfg.PubSub.GCloudProjectID,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Google Cloud Pub/Sub publisher initialized",
		"project_id", cfg.PubSub.GCloudProjectID,
	)

	return publisher, nil
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "class-remind-notifier"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = cfg.PubSub.GCloudProjectID
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:   env,
		LogLevel:      cfg.Log.Level,
		GCPProjectID:  projectID,
		SamplingRate:  1.0,
		DefaultModule: logging.Module("reminder"),
	})
}
