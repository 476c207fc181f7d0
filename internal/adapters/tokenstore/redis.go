// Package tokenstore holds revoked access token ids until the tokens expire.
// RedisBlocklist is shared across replicas; MemoryBlocklist serves single
// instance and local setups.
package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/watchstore-service/internal/domain"
	"github.com/jsamuelsen11/watchstore-service/internal/platform/config"
	"github.com/jsamuelsen11/watchstore-service/internal/ports"
)

const (
	keyPrefix   = "watchstore:revoked:"
	checkerName = "token-blocklist"
)

// redisStore is the subset of the go-redis client used by the blocklist.
type redisStore interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// RedisBlocklist stores revoked token ids as expiring Redis keys. Calls go
// through a circuit breaker; when Redis is unreachable both operations fail
// with domain.ErrUnavailable so revoked tokens are never accepted.
type RedisBlocklist struct {
	store   redisStore
	breaker *gobreaker.CircuitBreaker[bool]
	now     func() time.Time
}

var (
	_ ports.TokenBlocklist = (*RedisBlocklist)(nil)
	_ ports.HealthChecker  = (*RedisBlocklist)(nil)
)

// NewRedisClient builds a go-redis client from cfg.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})
}

// NewRedisBlocklist wraps store with a circuit breaker configured by cfg.
func NewRedisBlocklist(store redisStore, cfg config.CircuitBreakerConfig, logger *slog.Logger) *RedisBlocklist {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cb := gobreaker.NewCircuitBreaker[bool](gobreaker.Settings{
		Name:        checkerName,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			// A caller giving up says nothing about Redis health.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &RedisBlocklist{store: store, breaker: cb, now: time.Now}
}

// Revoke implements ports.TokenBlocklist. Tokens that have already expired
// are not stored.
func (b *RedisBlocklist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(b.now())
	if ttl <= 0 {
		return nil
	}

	_, err := b.breaker.Execute(func() (bool, error) {
		return true, b.store.Set(ctx, keyPrefix+tokenID, 1, ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("%w: revoking token: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// IsRevoked implements ports.TokenBlocklist.
func (b *RedisBlocklist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	revoked, err := b.breaker.Execute(func() (bool, error) {
		n, err := b.store.Exists(ctx, keyPrefix+tokenID).Result()
		return n > 0, err
	})
	if err != nil {
		return false, fmt.Errorf("%w: checking token revocation: %w", domain.ErrUnavailable, err)
	}
	return revoked, nil
}

// Name implements ports.HealthChecker.
func (b *RedisBlocklist) Name() string {
	return checkerName
}

// HealthCheck reports Redis availability. A closed breaker is healthy
// without a network call. Otherwise a PING goes through the breaker, so a
// half-open breaker can close again once Redis answers.
func (b *RedisBlocklist) HealthCheck(ctx context.Context) error {
	state := b.breaker.State()
	if state == gobreaker.StateClosed {
		return nil
	}

	_, err := b.breaker.Execute(func() (bool, error) {
		return true, b.store.Ping(ctx).Err()
	})
	if err != nil {
		return fmt.Errorf("%w: %s circuit breaker %s: %w", domain.ErrUnavailable, checkerName, state, err)
	}
	return nil
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
