package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/jsamuelsen11/watchstore-service/internal/domain"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/user"
	"github.com/jsamuelsen11/watchstore-service/internal/ports"
)

// Compile-time check that UserService implements ports.UserService.
var _ ports.UserService = (*UserService)(nil)

// UserService implements ports.UserService on top of the user repository.
type UserService struct {
	users       ports.UserRepository
	hasher      ports.PasswordHasher
	adminEmails []string
	logger      *slog.Logger
}

// NewUserService creates a UserService. Emails listed in adminEmails are
// registered with the admin role.
func NewUserService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	adminEmails []string,
	logger *slog.Logger,
) *UserService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	admins := make([]string, 0, len(adminEmails))
	for _, e := range adminEmails {
		admins = append(admins, domain.NormalizeEmail(e))
	}

	return &UserService{
		users:       users,
		hasher:      hasher,
		adminEmails: admins,
		logger:      logger,
	}
}

// Register validates and stores a new user.
func (s *UserService) Register(ctx context.Context, u *user.User, password string) (string, error) {
	if u == nil {
		return "", domain.NewValidationError("user", domain.MsgRequired)
	}

	u.EmailID = domain.NormalizeEmail(u.EmailID)
	s.logger.InfoContext(ctx, "registering user", slog.String("email_id", u.EmailID))

	u.Role = user.RoleCustomer
	if slices.Contains(s.adminEmails, u.EmailID) {
		u.Role = user.RoleAdmin
	}

	if err := u.Validate(); err != nil {
		return "", err
	}

	exists, err := s.users.Exists(ctx, u.EmailID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to check existing user",
			slog.String("operation", "Register"),
			slog.String("email_id", u.EmailID),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("checking existing user: %w", err)
	}
	if exists {
		return "", fmt.Errorf("user %s already exists: %w", u.EmailID, domain.ErrConflict)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	u.PasswordHash = hash

	if err := s.users.Create(ctx, u); err != nil {
		s.logger.ErrorContext(ctx, "failed to create user",
			slog.String("operation", "Register"),
			slog.String("email_id", u.EmailID),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("creating user: %w", err)
	}

	return u.EmailID, nil
}

// GetProfile returns the requester's own profile.
func (s *UserService) GetProfile(ctx context.Context, requester user.Principal, emailID string) (*user.User, error) {
	emailID = domain.NormalizeEmail(emailID)
	s.logger.InfoContext(ctx, "fetching user profile", slog.String("email_id", emailID))

	if !domain.IsEmail(emailID) {
		return nil, domain.NewValidationError("email_id", "must be a valid email address")
	}
	if domain.NormalizeEmail(requester.Email) != emailID {
		return nil, fmt.Errorf("profile of %s requested by another user: %w", emailID, domain.ErrForbidden)
	}

	u, err := s.users.FindByEmail(ctx, emailID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch user",
			slog.String("operation", "GetProfile"),
			slog.String("email_id", emailID),
			slog.Any("error", err),
		)
		return nil, err
	}

	return u, nil
}
