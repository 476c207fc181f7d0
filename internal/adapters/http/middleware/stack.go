package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jsamuelsen11/watchstore-service/internal/platform/telemetry"
)

// Stack returns the global middleware in the order the router must apply
// them. metrics may be nil; a non-positive requestTimeout disables Timeout.
func Stack(logger *slog.Logger, metrics *telemetry.Metrics, requestTimeout time.Duration) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(requestTimeout),
	}
}
