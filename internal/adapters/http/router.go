// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/watchstore-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/watchstore-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/user"
)

// Routes groups the handlers and route-scoped middleware mounted by NewRouter.
type Routes struct {
	Users     *handlers.UserHandler
	Auth      *handlers.AuthHandler
	Addresses *handlers.AddressHandler
	Watches   *handlers.WatchHandler
	Health    *handlers.HealthHandler

	// Authenticator verifies bearer tokens on protected routes.
	Authenticator middleware.TokenAuthenticator
	// RateLimit guards registration and login. Nil disables it.
	RateLimit func(http.Handler) http.Handler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(rt Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", rt.Health.Liveness)
	r.Get("/health/ready", rt.Health.Readiness)

	authenticate := middleware.Authenticate(rt.Authenticator)

	r.Route("/api/v1", func(r chi.Router) {
		// Public, rate limited.
		r.Group(func(r chi.Router) {
			if rt.RateLimit != nil {
				r.Use(rt.RateLimit)
			}
			r.Post("/users/register", rt.Users.Register)
			r.Post("/auth/login", rt.Auth.Login)
		})

		// Public catalog.
		r.Get("/watches", rt.Watches.ListWatches)
		r.Get("/watches/{watchId}", rt.Watches.GetWatch)

		// Authenticated.
		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Post("/auth/logout", rt.Auth.Logout)
			r.Get("/users/{emailId}", rt.Users.GetProfile)

			r.Post("/addresses", rt.Addresses.Save)
			r.Get("/addresses", rt.Addresses.List)
			r.Put("/addresses/{addressId}", rt.Addresses.Update)
			r.Delete("/addresses/{addressId}", rt.Addresses.Delete)

			// Catalog maintenance.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(user.RoleAdmin))
				r.Post("/watches", rt.Watches.CreateWatch)
				r.Put("/watches/{watchId}", rt.Watches.UpdateWatch)
				r.Delete("/watches/{watchId}", rt.Watches.DeleteWatch)
			})
		})
	})

	return r
}
