package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"collegeerp/internal/domain/auth"
)

func TestRateLimitBlocksOverLimit(t *testing.T) {
	handler := RateLimit(2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header on rejected request")
	}
}

func TestRateLimitKeysByActor(t *testing.T) {
	handler := RateLimit(1, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodGet, "/api/v1/marks", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	first = first.WithContext(WithUser(first.Context(), auth.UserContext{UserID: 1, Role: auth.RoleStudent}))

	second := httptest.NewRequest(http.MethodGet, "/api/v1/marks", nil)
	second.RemoteAddr = "10.0.0.1:1234"
	second = second.WithContext(WithUser(second.Context(), auth.UserContext{UserID: 2, Role: auth.RoleStudent}))

	for _, req := range []*http.Request{first, second} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("distinct users sharing an IP must not share a bucket, got %d", rec.Code)
		}
	}
}

func TestRateLimitSetsHeaders(t *testing.T) {
	handler := RateLimit(5, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/calendar/events", nil)
	req.RemoteAddr = "10.0.0.9:9999"
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("X-RateLimit-Limit") != "5" {
		t.Fatalf("expected limit header 5, got %q", rec.Header().Get("X-RateLimit-Limit"))
	}
	if rec.Header().Get("X-RateLimit-Remaining") != "4" {
		t.Fatalf("expected remaining header 4, got %q", rec.Header().Get("X-RateLimit-Remaining"))
	}
}
