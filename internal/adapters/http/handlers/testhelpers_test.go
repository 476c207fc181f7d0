package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/watchstore-service/internal/domain/address"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/user"
	"github.com/jsamuelsen11/watchstore-service/internal/domain/watch"
)

const testEmail = "jane@example.com"

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validAddress() address.Address {
	return address.Address{
		ID:          1,
		UserID:      testEmail,
		StreetName:  "12 Baker Street",
		City:        "Pune",
		State:       "Maharashtra",
		Country:     "India",
		Landmark:    "Near the clock tower",
		PhoneNumber: "9876543210",
		Pincode:     411001,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func validAddressBody() map[string]any {
	return map[string]any{
		"street_name":  "12 Baker Street",
		"city":         "Pune",
		"state":        "Maharashtra",
		"country":      "India",
		"landmark":     "Near the clock tower",
		"phone_number": "9876543210",
		"pincode":      "411001",
	}
}

func validWatch() watch.Watch {
	return watch.Watch{
		ID:              7,
		Brand:           "Seiko",
		Name:            "Presage",
		Type:            watch.TypeAnalog,
		Description:     "Automatic dress watch",
		ImagePaths:      []string{"/img/presage-front.jpg", "/img/presage-back.jpg"},
		StockQuantity:   4,
		Price:           decimal.RequireFromString("425.50"),
		AvailableStatus: watch.StatusAvailable,
		CreatedAt:       testTime,
		UpdatedAt:       testTime,
	}
}

func validWatchBody() map[string]any {
	return map[string]any{
		"brand":            "Seiko",
		"name":             "Presage",
		"type":             "analog",
		"description":      "Automatic dress watch",
		"image_paths":      []string{"/img/presage-front.jpg", "/img/presage-back.jpg"},
		"stock_quantity":   4,
		"price":            "425.50",
		"available_status": "available",
	}
}

func testPrincipal() user.Principal {
	return user.Principal{
		Email:     testEmail,
		Role:      user.RoleCustomer,
		TokenID:   "3f0c1a52-8d5e-4c8b-9a61-1f2e3d4c5b6a",
		ExpiresAt: testTime.Add(time.Hour),
	}
}

// withPrincipal attaches the authenticated caller the way the
// authentication middleware does.
func withPrincipal(r *http.Request, p user.Principal) *http.Request {
	return r.WithContext(user.WithPrincipal(r.Context(), p))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
