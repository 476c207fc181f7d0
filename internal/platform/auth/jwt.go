package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/watchstore-service/internal/domain"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/user"
	"github.com/jsamuelsen11/watchstore-service/internal/platform/config"
	"github.com/jsamuelsen11/watchstore-service/internal/ports"
)

// TokenTypeBearer is the token_type reported to clients.
const TokenTypeBearer = "Bearer"

// Claims is the JWT payload. Subject carries the user's email and ID the
// token id used for revocation.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer implements ports.TokenIssuer with HS256 signed tokens.
type JWTIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

var _ ports.TokenIssuer = (*JWTIssuer)(nil)

// Option configures a JWTIssuer.
type Option func(*JWTIssuer)

// WithClock overrides the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(j *JWTIssuer) {
		j.now = now
	}
}

// NewJWTIssuer returns an issuer configured from cfg.
func NewJWTIssuer(cfg config.AuthConfig, opts ...Option) *JWTIssuer {
	j := &JWTIssuer{
		secret: []byte(cfg.JWTSecret),
		issuer: cfg.Issuer,
		ttl:    cfg.TokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Issue implements ports.TokenIssuer.
func (j *JWTIssuer) Issue(u *user.User) (*user.AccessToken, error) {
	if u == nil {
		return nil, errors.New("issuing token: nil user")
	}

	now := j.now()
	expiresAt := now.Add(j.ttl)

	claims := Claims{
		Role: u.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   u.EmailID,
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return nil, fmt.Errorf("signing token: %w", err)
	}

	return &user.AccessToken{
		Value:     signed,
		TokenType: TokenTypeBearer,
		ExpiresAt: expiresAt.Truncate(time.Second),
	}, nil
}

// Parse implements ports.TokenIssuer. Every failure wraps
// domain.ErrUnauthorized.
func (j *JWTIssuer) Parse(raw string) (*user.Principal, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	role := user.Role(claims.Role)
	if claims.Subject == "" || claims.ID == "" || !role.IsValid() {
		return nil, fmt.Errorf("%w: incomplete token claims", domain.ErrUnauthorized)
	}

	return &user.Principal{
		Email:     claims.Subject,
		Role:      role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
