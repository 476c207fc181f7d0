package database

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jsamuelsen11/watchstore-service/internal/platform/config"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// pingWithRetry pings the database until it answers, the attempts are used up
// or ctx is done. Each failed attempt is logged at WARN level.
func pingWithRetry(ctx context.Context, ping func(context.Context) error, cfg config.RetryConfig, logger *slog.Logger) error {
	if cfg.MaxAttempts <= 0 {
		return fmt.Errorf("database: max_attempts must be >= 1, got %d", cfg.MaxAttempts)
	}

	var lastErr error

	for attempt := range cfg.MaxAttempts {
		if attempt > 0 {
			if err := waitForRetry(ctx, attempt, cfg, lastErr, logger); err != nil {
				return err
			}
		}

		lastErr = ping(ctx)
		if lastErr == nil {
			return nil
		}
		if errors.Is(lastErr, context.Canceled) || errors.Is(lastErr, context.DeadlineExceeded) {
			return lastErr
		}
	}

	return lastErr
}

// waitForRetry logs the retry attempt and waits for the backoff delay or
// context cancellation.
func waitForRetry(ctx context.Context, attempt int, cfg config.RetryConfig, lastErr error, logger *slog.Logger) error {
	delay := backoff(attempt, cfg)

	logger.WarnContext(ctx, "retrying database connection",
		slog.String("operation", "database.Open"),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", cfg.MaxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff calculates the delay for a given retry attempt using exponential
// backoff with ±25% jitter. The attempt parameter is 1-indexed (attempt 1 is
// the first retry).
func backoff(attempt int, cfg config.RetryConfig) time.Duration {
	delay := float64(cfg.InitialInterval) * math.Pow(cfg.Multiplier, float64(attempt-1))

	if delay > float64(cfg.MaxInterval) {
		delay = float64(cfg.MaxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}
