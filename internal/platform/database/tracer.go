package database

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/watchstore-service/internal/platform/telemetry"
)

const maxLoggedSQL = 200

// queryTracer implements pgx.QueryTracer. It opens a client span per query,
// records query metrics and logs queries slower than slowThreshold.
type queryTracer struct {
	slowThreshold time.Duration
	metrics       *telemetry.Metrics
	logger        *slog.Logger
}

var _ pgx.QueryTracer = (*queryTracer)(nil)

type queryTraceKey struct{}

type queryTrace struct {
	start     time.Time
	sql       string
	operation string
	span      trace.Span
}

func newQueryTracer(slowThreshold time.Duration, metrics *telemetry.Metrics, logger *slog.Logger) *queryTracer {
	return &queryTracer{slowThreshold: slowThreshold, metrics: metrics, logger: logger}
}

// TraceQueryStart implements pgx.QueryTracer.
func (t *queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	op := operationOf(data.SQL)

	ctx, span := otel.GetTracerProvider().Tracer("database").Start(ctx, "SQL "+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			telemetry.AttrDBOperation.String(op),
		),
	)

	return context.WithValue(ctx, queryTraceKey{}, &queryTrace{
		start:     time.Now(),
		sql:       data.SQL,
		operation: op,
		span:      span,
	})
}

// TraceQueryEnd implements pgx.QueryTracer.
func (t *queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	qt, ok := ctx.Value(queryTraceKey{}).(*queryTrace)
	if !ok {
		return
	}
	defer qt.span.End()

	duration := time.Since(qt.start)

	result := "success"
	if data.Err != nil {
		result = "error"
		qt.span.RecordError(data.Err)
		qt.span.SetStatus(codes.Error, data.Err.Error())
	} else {
		qt.span.SetAttributes(attribute.Int64("db.rows_affected", data.CommandTag.RowsAffected()))
	}

	if t.metrics != nil {
		attrs := metric.WithAttributes(
			telemetry.AttrDBOperation.String(qt.operation),
			telemetry.AttrResult.String(result),
		)
		t.metrics.DBQueryDuration.Record(ctx, duration.Seconds(), attrs)
		t.metrics.DBQueryTotal.Add(ctx, 1, attrs)
	}

	if t.slowThreshold > 0 && duration > t.slowThreshold {
		t.logger.WarnContext(ctx, "slow query detected",
			slog.String("operation", qt.operation),
			slog.Int64("duration_ms", duration.Milliseconds()),
			slog.String("sql", truncateSQL(qt.sql, maxLoggedSQL)),
		)
	}
}

// operationOf returns the leading SQL keyword in upper case, e.g. "SELECT".
func operationOf(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}

func truncateSQL(sql string, maxLen int) string {
	if len(sql) <= maxLen {
		return sql
	}
	return sql[:maxLen] + "..."
}
