package scope

import "context"

// Payload carries the authenticated identity extracted from a verified token.
type Payload struct {
	UserID    int64
	Email     string
	TokenID   string
	IssuedAt  int64
	ExpiresAt int64
}

// payloadKey holds the context key used for payloads.
type payloadKey struct{}

// SetPayloadToContext returns a new context carrying the payload.
func SetPayloadToContext(ctx context.Context, p Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, p)
}

// GetPayloadFromContext extracts the payload from the context.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadKey{}).(Payload)
	return p, ok
}
