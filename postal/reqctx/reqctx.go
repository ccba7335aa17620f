// Package reqctx carries request-scoped values that the API layer reads from
// headers and the business layer stamps onto stored records.
package reqctx

import "context"

type correlationIDKey struct{}

func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID returns the id stored in ctx, or nil when there is none
func CorrelationID(ctx context.Context) *string {
	id, ok := ctx.Value(correlationIDKey{}).(string)
	if !ok || id == "" {
		return nil
	}
	return &id
}
