//go:build gcloud

package metrics

import (
	"context"
	"os"

	mexporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func NewProvider(_ context.Context, cfg Config) (*Provider, error) {
	if os.Getenv("OTEL_EXPORTER_DISABLED") == "true" {
		return newNoopProvider(cfg), nil
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	exporter, err := mexporter.New(mexporter.WithProjectID(projectID))
	if err != nil {
		return nil, err
	}

	return NewProviderWithReader(cfg, sdkmetric.NewPeriodicReader(exporter)), nil
}
