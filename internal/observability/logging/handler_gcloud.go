//go:build gcloud

package logging

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// gcpTraceAttrs links a log line to its Cloud Trace span. Lines outside a
// sampled span carry nothing.
func gcpTraceAttrs(ctx context.Context, projectID string) []slog.Attr {
	if projectID == "" {
		return nil
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}

	return []slog.Attr{
		slog.String("logging.googleapis.com/trace", "projects/"+projectID+"/traces/"+sc.TraceID().String()),
		slog.String("logging.googleapis.com/spanId", sc.SpanID().String()),
		slog.Bool("logging.googleapis.com/trace_sampled", sc.IsSampled()),
	}
}
