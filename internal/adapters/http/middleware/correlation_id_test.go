package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/watchstore-service/internal/adapters/http/middleware"
)

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		inbound  string
		wantID   string
		noReqCtx bool
	}{
		{name: "inbound kept", inbound: "corr-abc", wantID: "corr-abc"},
		{name: "falls back to request id", inbound: "", wantID: "req-123"},
		{name: "malformed falls back", inbound: "bad\tvalue", wantID: "req-123"},
		{name: "no request id", inbound: "", wantID: "", noReqCtx: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID string
			handler := middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				gotID = middleware.CorrelationIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/addresses", http.NoBody)
			if !tt.noReqCtx {
				req = req.WithContext(middleware.WithRequestID(req.Context(), "req-123"))
			}
			if tt.inbound != "" {
				req.Header.Set("X-Correlation-ID", tt.inbound)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if gotID != tt.wantID {
				t.Errorf("context id = %q, want %q", gotID, tt.wantID)
			}
			if resp := rec.Header().Get("X-Correlation-ID"); resp != tt.wantID {
				t.Errorf("response X-Correlation-ID = %q, want %q", resp, tt.wantID)
			}
		})
	}
}

func TestCorrelationID_AfterRequestID(t *testing.T) {
	t.Parallel()

	var reqID, corrID string
	handler := middleware.RequestID()(middleware.CorrelationID()(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			reqID = middleware.RequestIDFromContext(r.Context())
			corrID = middleware.CorrelationIDFromContext(r.Context())
		}),
	))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if reqID == "" || corrID != reqID {
		t.Errorf("correlation id = %q, request id = %q; want equal and non-empty", corrID, reqID)
	}
}

func TestCorrelationIDFromContext_Empty(t *testing.T) {
	t.Parallel()

	if id := middleware.CorrelationIDFromContext(context.Background()); id != "" {
		t.Errorf("CorrelationIDFromContext = %q, want \"\"", id)
	}
}
