package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/watchstore-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/watchstore-service/internal/domain"
	"github.com/jsamuelsen11/watchstore-service/internal/platform/logging"
	"github.com/jsamuelsen11/watchstore-service/internal/ports"
)

const (
	statusOK          = "ok"
	statusReady       = "ready"
	statusNotReady    = "not_ready"
	statusUnavailable = "unavailable"
	statusFailing     = "failing"
)

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always 200.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready: 200 when every registered store
// (postgres, token-blocklist) is healthy, 503 otherwise. Failure details are
// logged, never returned; the body only says "unavailable" (the store
// reported domain.ErrUnavailable, e.g. an open circuit breaker) or "failing".
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err == nil {
			checks[name] = statusOK
			continue
		}

		healthy = false
		checks[name] = statusFailing
		if errors.Is(err, domain.ErrUnavailable) {
			checks[name] = statusUnavailable
		}
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.String("check", name),
			slog.Any("error", err),
		)
	}

	status, code := statusReady, http.StatusOK
	if !healthy {
		status, code = statusNotReady, http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, code, dto.HealthResponse{
		Status: status,
		Checks: checks,
	})
}
