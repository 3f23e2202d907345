// Package observability wires logging, tracing and metrics for a process.
package observability

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"

	"github.com/KasumiMercury/primind-class-remind/internal/observability/logging"
	"github.com/KasumiMercury/primind-class-remind/internal/observability/metrics"
	"github.com/KasumiMercury/primind-class-remind/internal/observability/tracing"
)

type Config struct {
	ServiceInfo   logging.ServiceInfo
	Environment   logging.Environment
	LogLevel      string
	GCPProjectID  string
	SamplingRate  float64
	DefaultModule logging.Module
}

type Resources struct {
	Logger  *slog.Logger
	Tracing *tracing.Provider
	Metrics *metrics.Provider
}

// Init installs the default slog logger and the global OpenTelemetry
// providers and propagator.
func Init(ctx context.Context, cfg Config) (*Resources, error) {
	logger := logging.NewLogger(os.Stdout, logging.Config{
		Level:         cfg.LogLevel,
		Service:       cfg.ServiceInfo,
		Environment:   cfg.Environment,
		DefaultModule: cfg.DefaultModule,
		GCPProjectID:  cfg.GCPProjectID,
	})
	slog.SetDefault(logger)

	tp, err := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
		SamplingRate:   cfg.SamplingRate,
	})
	if err != nil {
		return nil, err
	}

	mp, err := metrics.NewProvider(ctx, metrics.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
	})
	if err != nil {
		_ = tp.Shutdown(ctx)

		return nil, err
	}

	otel.SetTracerProvider(tp.TracerProvider())
	otel.SetMeterProvider(mp.MeterProvider())
	otel.SetTextMapPropagator(tracing.NewPropagator())

	return &Resources{
		Logger:  logger,
		Tracing: tp,
		Metrics: mp,
	}, nil
}

// Shutdown flushes both providers.
func (r *Resources) Shutdown(ctx context.Context) error {
	return errors.Join(
		r.Tracing.Shutdown(ctx),
		r.Metrics.Shutdown(ctx),
	)
}
