package main

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/watchstore-service/internal/adapters/http"
	"github.com/jsamuelsen11/watchstore-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/watchstore-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/watchstore-service/internal/adapters/repository/postgres"
	"github.com/jsamuelsen11/watchstore-service/internal/adapters/tokenstore"
	"github.com/jsamuelsen11/watchstore-service/internal/app"
	"github.com/jsamuelsen11/watchstore-service/internal/platform/auth"
	"github.com/jsamuelsen11/watchstore-service/internal/platform/config"
	"github.com/jsamuelsen11/watchstore-service/internal/platform/database"
	"github.com/jsamuelsen11/watchstore-service/internal/platform/health"
	"github.com/jsamuelsen11/watchstore-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/watchstore-service/internal/ports"
)

// blocklist is the token blocklist as seen by the container: it revokes
// tokens and reports its own readiness.
type blocklist interface {
	ports.TokenBlocklist
	ports.HealthChecker
}

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Stores.
	do.Provide(injector, func(i do.Injector) (*sqlx.DB, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return database.Open(ctx, cfg.Database, metrics, logger)
	})

	do.Provide(injector, func(_ do.Injector) (*redis.Client, error) {
		return tokenstore.NewRedisClient(cfg.Redis), nil
	})

	do.Provide(injector, func(i do.Injector) (blocklist, error) {
		if !cfg.Redis.Enabled {
			logger.Warn("redis disabled, token revocations are kept in process memory")
			return tokenstore.NewMemoryBlocklist(), nil
		}
		client := do.MustInvoke[*redis.Client](i)
		return tokenstore.NewRedisBlocklist(client, cfg.Redis.CircuitBreaker, logger), nil
	})

	// Repositories.
	do.Provide(injector, func(i do.Injector) (ports.UserRepository, error) {
		return postgres.NewUserRepository(do.MustInvoke[*sqlx.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AddressRepository, error) {
		return postgres.NewAddressRepository(do.MustInvoke[*sqlx.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.WatchRepository, error) {
		return postgres.NewWatchRepository(do.MustInvoke[*sqlx.DB](i)), nil
	})

	// Security.
	do.Provide(injector, func(_ do.Injector) (ports.PasswordHasher, error) {
		return auth.NewBcryptHasher(cfg.Auth.BcryptCost), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.TokenIssuer, error) {
		return auth.NewJWTIssuer(cfg.Auth), nil
	})

	// Services.
	do.Provide(injector, func(i do.Injector) (ports.UserService, error) {
		return app.NewUserService(
			do.MustInvoke[ports.UserRepository](i),
			do.MustInvoke[ports.PasswordHasher](i),
			cfg.Auth.AdminEmails,
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		return app.NewAuthService(
			do.MustInvoke[ports.UserRepository](i),
			do.MustInvoke[ports.PasswordHasher](i),
			do.MustInvoke[ports.TokenIssuer](i),
			do.MustInvoke[blocklist](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AddressService, error) {
		return app.NewAddressService(do.MustInvoke[ports.AddressRepository](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.WatchService, error) {
		return app.NewWatchService(do.MustInvoke[ports.WatchRepository](i), logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// HTTP.
	do.Provide(injector, func(i do.Injector) (*middleware.RateLimiter, error) {
		return middleware.NewRateLimiter(cfg.RateLimit, do.MustInvoke[*telemetry.Metrics](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		authSvc := do.MustInvoke[ports.AuthService](i)
		limiter := do.MustInvoke[*middleware.RateLimiter](i)

		routes := adapthttp.Routes{
			Users:         handlers.NewUserHandler(do.MustInvoke[ports.UserService](i)),
			Auth:          handlers.NewAuthHandler(authSvc),
			Addresses:     handlers.NewAddressHandler(do.MustInvoke[ports.AddressService](i)),
			Watches:       handlers.NewWatchHandler(do.MustInvoke[ports.WatchService](i)),
			Health:        handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			Authenticator: authSvc,
			RateLimit:     limiter.Handler,
		}

		return adapthttp.NewRouter(routes,
			middleware.Stack(logger, metrics, cfg.Server.RequestTimeout)...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// registerHealthCheckers adds the backing stores to the readiness registry
// once the graph is wired.
func registerHealthCheckers(injector *do.RootScope) {
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(database.NewChecker(do.MustInvoke[*sqlx.DB](injector)))
	registry.Register(do.MustInvoke[blocklist](injector))
}

// closeResources stops background workers and closes store connections.
func closeResources(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.MustInvoke[*middleware.RateLimiter](injector).Stop()

	if err := do.MustInvoke[*sqlx.DB](injector).Close(); err != nil {
		logger.Error("closing database", slog.Any("error", err))
	}

	if cfg.Redis.Enabled {
		if err := do.MustInvoke[*redis.Client](injector).Close(); err != nil {
			logger.Error("closing redis", slog.Any("error", err))
		}
	}
}
