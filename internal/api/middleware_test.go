package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trip-match-service/internal/adapters/matrix"
)

func TestAPIKeyGate(t *testing.T) {
	provider := matrix.NewMockMatrixProvider(nil)
	router := NewRouter(provider, "secret")

	tests := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "nope", http.StatusUnauthorized},
		{"valid key", "secret", http.StatusBadRequest}, // passes the gate, fails on empty body
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/matches/rank", strings.NewReader(""))
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestAPIKeyGateDisabledWhenUnset(t *testing.T) {
	router := NewRouter(matrix.NewMockMatrixProvider(nil), "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRequestIDAssigned(t *testing.T) {
	router := NewRouter(matrix.NewMockMatrixProvider(nil), "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected a generated X-Request-ID header")
	}
}

func TestRequestIDHonorsInbound(t *testing.T) {
	router := NewRouter(matrix.NewMockMatrixProvider(nil), "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("X-Request-ID = %q, want req-123", got)
	}
}
