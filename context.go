package goTokenCache

import "context"

type correlationIDContextKey struct{}

// WithCorrelationID attaches a caller-chosen correlation identifier to ctx.
// Audit events emitted while the context is in scope carry it, which is the
// only way to tie a cleanup sweep back to the request that triggered it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDContextKey{}, id)
}

func correlationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(correlationIDContextKey{}).(string)
	return id
}
