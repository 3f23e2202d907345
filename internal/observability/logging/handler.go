package logging

import (
	"context"
	"log/slog"
)

type contextHandler struct {
	next          slog.Handler
	defaultModule Module
	projectID     string
}

func newContextHandler(next slog.Handler, defaultModule Module, projectID string) *contextHandler {
	return &contextHandler{
		next:          next,
		defaultModule: defaultModule,
		projectID:     projectID,
	}
}

func (h *contextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if id := RequestIDFromContext(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}

	module := ModuleFromContext(ctx)
	if module == "" {
		module = h.defaultModule
	}

	if module != "" {
		r.AddAttrs(slog.String("module", string(module)))
	}

	r.AddAttrs(gcpTraceAttrs(ctx, h.projectID)...)

	return h.next.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newContextHandler(h.next.WithAttrs(attrs), h.defaultModule, h.projectID)
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return newContextHandler(h.next.WithGroup(name), h.defaultModule, h.projectID)
}
