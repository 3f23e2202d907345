package metrics

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
)

type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
}

type Provider struct {
	mp *sdkmetric.MeterProvider
}

func (p *Provider) MeterProvider() metric.MeterProvider {
	return p.mp
}

func (p *Provider) Meter(name string) metric.Meter {
	return p.mp.Meter(name)
}

func (p *Provider) Shutdown(ctx context.Context) error {
	return p.mp.Shutdown(ctx)
}

func newResource(cfg Config) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironmentName(cfg.Environment),
	)
}

// newNoopProvider records into a MeterProvider that has no reader, so
// nothing is exported.
func newNoopProvider(cfg Config) *Provider {
	return &Provider{mp: sdkmetric.NewMeterProvider(sdkmetric.WithResource(newResource(cfg)))}
}

// NewProviderWithReader is used by tests to collect what was recorded.
func NewProviderWithReader(cfg Config, reader sdkmetric.Reader) *Provider {
	return &Provider{mp: sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(newResource(cfg)),
	)}
}
