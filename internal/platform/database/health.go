package database

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/watchstore-service/internal/ports"
)

// Pinger is the subset of *sqlx.DB used by the readiness check.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Checker reports database reachability to the health registry.
type Checker struct {
	db Pinger
}

var _ ports.HealthChecker = (*Checker)(nil)

// NewChecker returns a health checker that pings db.
func NewChecker(db Pinger) *Checker {
	return &Checker{db: db}
}

// Name implements ports.HealthChecker.
func (c *Checker) Name() string {
	return "postgres"
}

// HealthCheck implements ports.HealthChecker. The registry bounds ctx with
// a per-check timeout.
func (c *Checker) HealthCheck(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging postgres: %w", err)
	}
	return nil
}
