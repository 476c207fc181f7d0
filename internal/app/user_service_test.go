package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/watchstore-service/internal/domain"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/user"
	"github.com/jsamuelsen11/watchstore-service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validUser() *user.User {
	return &user.User{
		EmailID:     "Jane@Example.com",
		Name:        "Jane Doe",
		PhoneNumber: "9876543210",
	}
}

// --- NewUserService ---

func TestNewUserService_NilLogger(t *testing.T) {
	t.Parallel()

	svc := NewUserService(mocks.NewMockUserRepository(t), mocks.NewMockPasswordHasher(t), nil, nil)
	if svc.logger == nil {
		t.Fatal("NewUserService(nil logger) should create a no-op logger, got nil")
	}
}

// --- Register ---

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	t.Run("stores a new customer with a hashed password", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockUserRepository(t)
		hasher := mocks.NewMockPasswordHasher(t)
		svc := NewUserService(repo, hasher, nil, discardLogger())

		repo.EXPECT().Exists(mock.Anything, "jane@example.com").Return(false, nil)
		hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
		repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.EmailID == "jane@example.com" && u.PasswordHash == "hashed" && u.Role == user.RoleCustomer
		})).Return(nil)

		got, err := svc.Register(context.Background(), validUser(), "s3cret-pass")
		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}
		if got != "jane@example.com" {
			t.Errorf("Register() = %q, want %q", got, "jane@example.com")
		}
	})

	t.Run("grants admin role to configured emails", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockUserRepository(t)
		hasher := mocks.NewMockPasswordHasher(t)
		svc := NewUserService(repo, hasher, []string{" JANE@example.com"}, discardLogger())

		repo.EXPECT().Exists(mock.Anything, "jane@example.com").Return(false, nil)
		hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			return u.Role == user.RoleAdmin
		})).Return(nil)

		if _, err := svc.Register(context.Background(), validUser(), "s3cret-pass"); err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}
	})

	t.Run("rejects an existing email", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockUserRepository(t)
		svc := NewUserService(repo, mocks.NewMockPasswordHasher(t), nil, discardLogger())

		repo.EXPECT().Exists(mock.Anything, "jane@example.com").Return(true, nil)

		_, err := svc.Register(context.Background(), validUser(), "s3cret-pass")
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("Register() error = %v, want ErrConflict", err)
		}
	})

	t.Run("returns validation error before touching storage", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(mocks.NewMockUserRepository(t), mocks.NewMockPasswordHasher(t), nil, discardLogger())

		u := validUser()
		u.PhoneNumber = "4567890"

		_, err := svc.Register(context.Background(), u, "s3cret-pass")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Register() error = %v, want ErrValidation", err)
		}
	})

	t.Run("returns validation error for nil user", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(mocks.NewMockUserRepository(t), mocks.NewMockPasswordHasher(t), nil, discardLogger())

		_, err := svc.Register(context.Background(), nil, "s3cret-pass")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Register(nil) error = %v, want ErrValidation", err)
		}
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockUserRepository(t)
		hasher := mocks.NewMockPasswordHasher(t)
		svc := NewUserService(repo, hasher, nil, discardLogger())

		repo.EXPECT().Exists(mock.Anything, mock.Anything).Return(false, nil)
		hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
		repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUnavailable)

		_, err := svc.Register(context.Background(), validUser(), "s3cret-pass")
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Register() error = %v, want ErrUnavailable", err)
		}
	})
}

// --- GetProfile ---

func TestUserService_GetProfile(t *testing.T) {
	t.Parallel()

	self := user.Principal{Email: "jane@example.com", Role: user.RoleCustomer}

	t.Run("returns own profile", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockUserRepository(t)
		svc := NewUserService(repo, mocks.NewMockPasswordHasher(t), nil, discardLogger())

		stored := &user.User{EmailID: "jane@example.com", Name: "Jane Doe"}
		repo.EXPECT().FindByEmail(mock.Anything, "jane@example.com").Return(stored, nil)

		got, err := svc.GetProfile(context.Background(), self, "JANE@example.com")
		if err != nil {
			t.Fatalf("GetProfile() error = %v, want nil", err)
		}
		if got.Name != "Jane Doe" {
			t.Errorf("GetProfile().Name = %q, want %q", got.Name, "Jane Doe")
		}
	})

	t.Run("forbids another user's profile", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(mocks.NewMockUserRepository(t), mocks.NewMockPasswordHasher(t), nil, discardLogger())

		_, err := svc.GetProfile(context.Background(), self, "john@example.com")
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("GetProfile() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		t.Parallel()
		svc := NewUserService(mocks.NewMockUserRepository(t), mocks.NewMockPasswordHasher(t), nil, discardLogger())

		_, err := svc.GetProfile(context.Background(), self, "not-an-email")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("GetProfile() error = %v, want ErrValidation", err)
		}
	})

	t.Run("returns not found", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockUserRepository(t)
		svc := NewUserService(repo, mocks.NewMockPasswordHasher(t), nil, discardLogger())

		repo.EXPECT().FindByEmail(mock.Anything, "jane@example.com").Return(nil, domain.ErrNotFound)

		_, err := svc.GetProfile(context.Background(), self, "jane@example.com")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetProfile() error = %v, want ErrNotFound", err)
		}
	})
}
