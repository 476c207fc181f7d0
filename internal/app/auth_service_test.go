package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/watchstore-service/internal/domain"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/user"
	"github.com/jsamuelsen11/watchstore-service/mocks"
)

type authMocks struct {
	users     *mocks.MockUserRepository
	hasher    *mocks.MockPasswordHasher
	issuer    *mocks.MockTokenIssuer
	blocklist *mocks.MockTokenBlocklist
}

func newAuthService(t *testing.T) (*AuthService, authMocks) {
	t.Helper()
	m := authMocks{
		users:     mocks.NewMockUserRepository(t),
		hasher:    mocks.NewMockPasswordHasher(t),
		issuer:    mocks.NewMockTokenIssuer(t),
		blocklist: mocks.NewMockTokenBlocklist(t),
	}
	return NewAuthService(m.users, m.hasher, m.issuer, m.blocklist, discardLogger()), m
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	stored := &user.User{EmailID: "jane@example.com", PasswordHash: "hashed", Role: user.RoleCustomer}

	t.Run("issues token for valid credentials", func(t *testing.T) {
		t.Parallel()
		svc, m := newAuthService(t)

		want := &user.AccessToken{Value: "signed", TokenType: "Bearer", ExpiresAt: time.Now().Add(time.Hour)}
		m.users.EXPECT().FindByEmail(mock.Anything, "jane@example.com").Return(stored, nil)
		m.hasher.EXPECT().Compare("hashed", "s3cret-pass").Return(nil)
		m.issuer.EXPECT().Issue(stored).Return(want, nil)

		got, err := svc.Login(context.Background(), " Jane@example.com", "s3cret-pass")
		if err != nil {
			t.Fatalf("Login() error = %v, want nil", err)
		}
		if got.Value != "signed" {
			t.Errorf("Login().Value = %q, want %q", got.Value, "signed")
		}
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		t.Parallel()
		svc, m := newAuthService(t)

		m.users.EXPECT().FindByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, err := svc.Login(context.Background(), "ghost@example.com", "whatever1")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("Login() error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		t.Parallel()
		svc, m := newAuthService(t)

		m.users.EXPECT().FindByEmail(mock.Anything, "jane@example.com").Return(stored, nil)
		m.hasher.EXPECT().Compare("hashed", "nope").Return(errors.New("mismatch"))

		_, err := svc.Login(context.Background(), "jane@example.com", "nope")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("Login() error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("storage failure is not reported as bad credentials", func(t *testing.T) {
		t.Parallel()
		svc, m := newAuthService(t)

		m.users.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, domain.ErrUnavailable)

		_, err := svc.Login(context.Background(), "jane@example.com", "s3cret-pass")
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Login() error = %v, want ErrUnavailable", err)
		}
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Parallel()

	t.Run("revokes token until expiry", func(t *testing.T) {
		t.Parallel()
		svc, m := newAuthService(t)

		exp := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
		m.blocklist.EXPECT().Revoke(mock.Anything, "jti-1", exp).Return(nil)

		err := svc.Logout(context.Background(), user.Principal{Email: "jane@example.com", TokenID: "jti-1", ExpiresAt: exp})
		if err != nil {
			t.Errorf("Logout() error = %v, want nil", err)
		}
	})

	t.Run("token without id is unauthorized", func(t *testing.T) {
		t.Parallel()
		svc, _ := newAuthService(t)

		err := svc.Logout(context.Background(), user.Principal{Email: "jane@example.com"})
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("Logout() error = %v, want ErrUnauthorized", err)
		}
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	t.Parallel()

	principal := &user.Principal{Email: "jane@example.com", Role: user.RoleCustomer, TokenID: "jti-1"}

	t.Run("returns principal for live token", func(t *testing.T) {
		t.Parallel()
		svc, m := newAuthService(t)

		m.issuer.EXPECT().Parse("raw").Return(principal, nil)
		m.blocklist.EXPECT().IsRevoked(mock.Anything, "jti-1").Return(false, nil)

		got, err := svc.Authenticate(context.Background(), "raw")
		if err != nil {
			t.Fatalf("Authenticate() error = %v, want nil", err)
		}
		if got.Email != "jane@example.com" {
			t.Errorf("Authenticate().Email = %q, want %q", got.Email, "jane@example.com")
		}
	})

	t.Run("revoked token is unauthorized", func(t *testing.T) {
		t.Parallel()
		svc, m := newAuthService(t)

		m.issuer.EXPECT().Parse("raw").Return(principal, nil)
		m.blocklist.EXPECT().IsRevoked(mock.Anything, "jti-1").Return(true, nil)

		_, err := svc.Authenticate(context.Background(), "raw")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("Authenticate() error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("invalid token passes parser error through", func(t *testing.T) {
		t.Parallel()
		svc, m := newAuthService(t)

		m.issuer.EXPECT().Parse("raw").Return(nil, domain.ErrUnauthorized)

		_, err := svc.Authenticate(context.Background(), "raw")
		if !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("Authenticate() error = %v, want ErrUnauthorized", err)
		}
	})

	t.Run("blocklist outage is unavailable", func(t *testing.T) {
		t.Parallel()
		svc, m := newAuthService(t)

		m.issuer.EXPECT().Parse("raw").Return(principal, nil)
		m.blocklist.EXPECT().IsRevoked(mock.Anything, "jti-1").Return(false, domain.ErrUnavailable)

		_, err := svc.Authenticate(context.Background(), "raw")
		if !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("Authenticate() error = %v, want ErrUnavailable", err)
		}
	})
}
