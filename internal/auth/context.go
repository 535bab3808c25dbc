package auth

import "context"

type contextKey struct{}

// WithUser returns a context carrying the authenticated user id. Only the
// auth middleware sets this.
func WithUser(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// UserID extracts the authenticated user id from the context.
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(contextKey{}).(int64)
	return id, ok
}
