package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/watchstore-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/watchstore-service/internal/domain"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/user"
	"github.com/jsamuelsen11/watchstore-service/internal/platform/logging"
)

const bearerPrefix = "Bearer "

// TokenAuthenticator verifies a raw bearer token.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, rawToken string) (*user.Principal, error)
}

// Authenticate returns middleware that requires a valid
// "Authorization: Bearer <token>" header. The verified principal is stored
// with user.WithPrincipal and the request logger gains a "user" attribute.
// Missing, malformed, expired or revoked tokens get a 401 problem response.
func Authenticate(auth TokenAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				dto.WriteErrorResponse(w, r, fmt.Errorf("%w: missing bearer token", domain.ErrUnauthorized))
				return
			}

			p, err := auth.Authenticate(r.Context(), raw)
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx := user.WithPrincipal(r.Context(), *p)
			ctx = logging.With(ctx, slog.String("user", p.Email))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns middleware that rejects principals without role with
// 403. It must run after Authenticate.
func RequireRole(role user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := user.PrincipalFromContext(r.Context())
			if !ok {
				dto.WriteErrorResponse(w, r, fmt.Errorf("%w: missing credentials", domain.ErrUnauthorized))
				return
			}
			if p.Role != role {
				dto.WriteErrorResponse(w, r, fmt.Errorf("%w: requires role %s", domain.ErrForbidden, role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from the Authorization header. The scheme
// is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	if len(h) <= len(bearerPrefix) || !strings.EqualFold(h[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	tok := strings.TrimSpace(h[len(bearerPrefix):])
	return tok, tok != ""
}
