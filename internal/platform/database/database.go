// Package database opens the PostgreSQL connection pool used by the
// repositories, applies schema migrations and exposes a readiness check.
//
// Connections go through pgx's database/sql driver so sqlx can be layered on
// top, while a pgx query tracer records spans, metrics and slow queries:
//
//	db, err := database.Open(ctx, cfg.Database, metrics, logger)
//	defer db.Close()
package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/watchstore-service/internal/platform/config"
	"github.com/jsamuelsen11/watchstore-service/internal/platform/telemetry"
)

// DriverName is the database/sql driver registered by pgx's stdlib package.
const DriverName = "pgx"

// Open creates the connection pool and waits until the database answers,
// retrying with exponential backoff per cfg.ConnectRetry. If metrics is nil,
// query metrics are skipped.
func Open(ctx context.Context, cfg config.DatabaseConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	connConfig, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parsing database dsn: %w", err)
	}
	connConfig.Tracer = newQueryTracer(cfg.SlowQueryThreshold, metrics, logger)

	sqlDB := stdlib.OpenDB(*connConfig)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	db := sqlx.NewDb(sqlDB, DriverName)

	if err := pingWithRetry(ctx, db.PingContext, cfg.ConnectRetry, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	logger.Info("connected to PostgreSQL",
		slog.String("host", connConfig.Host),
		slog.String("database", connConfig.Database),
		slog.Int("max_open_conns", cfg.MaxOpenConns),
	)

	return db, nil
}
