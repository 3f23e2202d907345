package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// PushMetrics counts Web Push delivery outcomes under one instrument
// split by an outcome attribute.
type PushMetrics struct {
	deliveries metric.Int64Counter
}

func NewPushMetrics(meter metric.Meter) (*PushMetrics, error) {
	deliveries, err := meter.Int64Counter("push.deliveries",
		metric.WithDescription("Web Push delivery attempts by outcome"),
	)
	if err != nil {
		return nil, err
	}

	return &PushMetrics{deliveries: deliveries}, nil
}

func (m *PushMetrics) record(ctx context.Context, outcome string) {
	m.deliveries.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *PushMetrics) RecordSent(ctx context.Context) {
	m.record(ctx, "sent")
}

func (m *PushMetrics) RecordFailed(ctx context.Context) {
	m.record(ctx, "failed")
}

func (m *PushMetrics) RecordExpired(ctx context.Context) {
	m.record(ctx, "expired")
}
