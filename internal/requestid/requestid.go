// Package requestid tags each API request with a UUID so every log line
// produced while handling a signup, login or password reset can be traced
// back to the request that caused it.
package requestid

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey struct{}

// New returns a fresh request ID (UUID v4).
func New() string {
	return uuid.NewString()
}

// WithRequestID attaches the request ID to ctx. The slog context handler
// reads it back out on every log call.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request ID carried by ctx, or "" when the
// context did not pass through the middleware.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
