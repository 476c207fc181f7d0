package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/watchstore-service/internal/domain"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/user"
	"github.com/jsamuelsen11/watchstore-service/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// errInvalidCredentials is returned for both unknown emails and wrong
// passwords so callers cannot discover which accounts exist.
var errInvalidCredentials = fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)

// AuthService implements ports.AuthService with a password hasher, a token
// issuer and a revocation blocklist.
type AuthService struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	issuer    ports.TokenIssuer
	blocklist ports.TokenBlocklist
	logger    *slog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	blocklist ports.TokenBlocklist,
	logger *slog.Logger,
) *AuthService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		issuer:    issuer,
		blocklist: blocklist,
		logger:    logger,
	}
}

// Login verifies credentials and issues an access token.
func (s *AuthService) Login(ctx context.Context, emailID, password string) (*user.AccessToken, error) {
	emailID = domain.NormalizeEmail(emailID)
	s.logger.InfoContext(ctx, "login attempt", slog.String("email_id", emailID))

	u, err := s.users.FindByEmail(ctx, emailID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		s.logger.ErrorContext(ctx, "failed to load user for login",
			slog.String("operation", "Login"),
			slog.String("email_id", emailID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading user: %w", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		s.logger.WarnContext(ctx, "login rejected", slog.String("email_id", emailID))
		return nil, errInvalidCredentials
	}

	token, err := s.issuer.Issue(u)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue token",
			slog.String("operation", "Login"),
			slog.String("email_id", emailID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return token, nil
}

// Logout revokes the principal's token until it expires.
func (s *AuthService) Logout(ctx context.Context, p user.Principal) error {
	s.logger.InfoContext(ctx, "logging out", slog.String("email_id", p.Email))

	if p.TokenID == "" {
		return fmt.Errorf("token has no id: %w", domain.ErrUnauthorized)
	}

	if err := s.blocklist.Revoke(ctx, p.TokenID, p.ExpiresAt); err != nil {
		s.logger.ErrorContext(ctx, "failed to revoke token",
			slog.String("operation", "Logout"),
			slog.String("email_id", p.Email),
			slog.Any("error", err),
		)
		return fmt.Errorf("revoking token: %w", err)
	}

	return nil
}

// Authenticate verifies rawToken and checks it has not been revoked.
func (s *AuthService) Authenticate(ctx context.Context, rawToken string) (*user.Principal, error) {
	p, err := s.issuer.Parse(rawToken)
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	revoked, err := s.blocklist.IsRevoked(ctx, p.TokenID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check token revocation",
			slog.String("operation", "Authenticate"),
			slog.String("email_id", p.Email),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("checking revocation: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("token revoked: %w", domain.ErrUnauthorized)
	}

	return p, nil
}
