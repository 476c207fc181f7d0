package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/watchstore-service/internal/adapters/http/middleware"
)

const redactedValue = "[REDACTED]"

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{
		"Authorization":       {"Bearer eyJhbGciOiJIUzI1NiJ9.e30.sig"},
		"Proxy-Authorization": {"Basic dXNlcjpwYXNz"},
		"Cookie":              {"session=abc123"},
		"X-Api-Key":           {"key"},
		"Accept":              {"application/json", "application/problem+json"},
		"X-Request-Id":        {"req-1"},
	}

	attrs := middleware.RedactHeaders(headers)

	want := []struct{ key, value string }{
		{"Accept", "application/json,application/problem+json"},
		{"Authorization", redactedValue},
		{"Cookie", redactedValue},
		{"Proxy-Authorization", redactedValue},
		{"X-Api-Key", redactedValue},
		{"X-Request-Id", "req-1"},
	}

	if len(attrs) != len(want) {
		t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(want))
	}
	for i, w := range want {
		if attrs[i].Key != w.key {
			t.Errorf("attrs[%d].Key = %q, want %q (sorted)", i, attrs[i].Key, w.key)
		}
		if got := attrs[i].Value.String(); got != w.value {
			t.Errorf("%s = %q, want %q", w.key, got, w.value)
		}
	}
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	if attrs := middleware.RedactHeaders(http.Header{}); len(attrs) != 0 {
		t.Errorf("len(attrs) = %d, want 0", len(attrs))
	}
}
