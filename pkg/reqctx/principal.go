package reqctx

import "context"

// Principal identifies the authenticated user for the duration of a request.
// It carries only what downstream code needs for scoping decisions; the full
// identity record stays in the session layer.
type Principal struct {
	ID   int
	Role string
}

// WithPrincipal stores the authenticated principal in the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, keyPrincipal, p)
}

// PrincipalFromContext retrieves the principal from the context.
// The second return is false when the request is unauthenticated.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	v := ctx.Value(keyPrincipal)
	if v == nil {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}

// MustPrincipal retrieves the principal or panics. Calling this outside a
// session-guarded handler is a programming error, not a runtime condition to
// recover from.
func MustPrincipal(ctx context.Context) Principal {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		panic("reqctx: principal not found in context")
	}
	return p
}

// IsAuthenticated returns true if a principal exists in the context.
func IsAuthenticated(ctx context.Context) bool {
	_, ok := PrincipalFromContext(ctx)
	return ok
}
