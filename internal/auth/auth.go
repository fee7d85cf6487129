package auth

import "context"

// Verifier validates a bearer token against the identity provider and returns
// the stable subject id embedded in it. Every request is verified remotely;
// there is no local token cache.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (string, error)
}

type contextKey struct{}

// WithUID returns a context carrying the verified subject id.
func WithUID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, contextKey{}, uid)
}

// UIDFromContext extracts the subject id stored by the auth middleware.
func UIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(contextKey{}).(string)
	return uid, ok
}
