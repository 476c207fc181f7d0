package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/watchstore-service/internal/domain/user"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns nil if password matches hash.
	Compare(hash, password string) error
}

// TokenIssuer signs and verifies access tokens.
type TokenIssuer interface {
	// Issue returns a signed token for u carrying a fresh token id.
	Issue(u *user.User) (*user.AccessToken, error)

	// Parse verifies signature, issuer and expiry and returns the principal.
	Parse(raw string) (*user.Principal, error)
}

// TokenBlocklist records revoked token ids until they would have expired anyway.
type TokenBlocklist interface {
	// Revoke blocks tokenID until the given time.
	Revoke(ctx context.Context, tokenID string, until time.Time) error

	// IsRevoked reports whether tokenID has been revoked.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
