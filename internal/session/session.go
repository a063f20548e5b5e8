// Package session threads the acting user through context. The mock client
// this replaces hardcoded "current user = 1" everywhere; here the identity is
// always an explicit value attached to the request context.
package session

import "context"

type userIDKey struct{}

// WithUser attaches the acting user's identifier to the context.
func WithUser(ctx context.Context, userID int) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID extracts the acting user's identifier from the context. The second
// return value reports whether a session was attached at all.
func UserID(ctx context.Context) (int, bool) {
	if ctx == nil {
		return 0, false
	}
	if v := ctx.Value(userIDKey{}); v != nil {
		if id, ok := v.(int); ok && id > 0 {
			return id, true
		}
	}
	return 0, false
}
