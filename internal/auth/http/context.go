// Package http provides HTTP middleware and handlers for authentication.
package http

import (
	"context"

	authDomain "github.com/allisson/expense-tracker/internal/auth/domain"
)

// principalKey is a context key type for storing authenticated principals.
type principalKey struct{}

// WithPrincipal stores an authenticated principal in the context.
// A principal already present is never overwritten: the first attachment wins
// for the lifetime of the request, even if the middleware were to run twice.
func WithPrincipal(ctx context.Context, principal *authDomain.Principal) context.Context {
	if _, ok := GetPrincipal(ctx); ok {
		return ctx
	}
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the authenticated principal from the context.
// Returns (principal, true) if present, or (nil, false) for an anonymous request.
func GetPrincipal(ctx context.Context) (*authDomain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*authDomain.Principal)
	return principal, ok
}
