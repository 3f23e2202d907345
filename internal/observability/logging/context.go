package logging

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	moduleKey
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) Module {
	m, _ := ctx.Value(moduleKey).(Module)

	return m
}

// ValidateAndExtractRequestID returns the header value when it is a UUID and
// a fresh v7 UUID otherwise.
func ValidateAndExtractRequestID(header string) string {
	if header != "" {
		if id, err := uuid.Parse(header); err == nil {
			return id.String()
		}
	}

	return uuid.Must(uuid.NewV7()).String()
}
