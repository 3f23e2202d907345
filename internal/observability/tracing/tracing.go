package tracing

import (
	"context"

	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
	"go.opentelemetry.io/otel/trace"
)

type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// SamplingRate is the fraction of root spans kept, from 0 to 1.
	SamplingRate float64
}

type Provider struct {
	tp *sdktrace.TracerProvider
}

func (p *Provider) TracerProvider() trace.TracerProvider {
	return p.tp
}

func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}

func newResource(cfg Config) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironmentName(cfg.Environment),
	)
}

func newSampler(cfg Config) sdktrace.Sampler {
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SamplingRate))
}
