package user

import (
	"context"
	"time"
)

// Principal is the authenticated caller, derived from a verified access token.
type Principal struct {
	Email     string
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}

// IsAdmin reports whether the principal may manage the catalog.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// AccessToken is a signed bearer token handed out on login.
type AccessToken struct {
	Value     string
	TokenType string
	ExpiresAt time.Time
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal stored by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
