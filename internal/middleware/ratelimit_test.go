package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func limitedHandler(rps float64, burst int) http.Handler {
	return RateLimit(rps, burst)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func hitFrom(t *testing.T, h http.Handler, addr string) int {
	t.Helper()

	req := httptest.NewRequest("POST", "/auth/login", nil)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimitBlocksAfterBurst(t *testing.T) {
	h := limitedHandler(1, 2)

	for i := 0; i < 2; i++ {
		if code := hitFrom(t, h, "10.0.0.1:5000"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, code)
		}
	}

	req := httptest.NewRequest("POST", "/auth/login", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst exhausted, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on 429 response")
	}
}

func TestRateLimitTracksClientsSeparately(t *testing.T) {
	h := limitedHandler(1, 1)

	if code := hitFrom(t, h, "10.0.0.1:5000"); code != http.StatusOK {
		t.Fatalf("first client: expected 200, got %d", code)
	}
	if code := hitFrom(t, h, "10.0.0.1:5000"); code != http.StatusTooManyRequests {
		t.Fatalf("first client: expected 429, got %d", code)
	}

	// A different IP has its own budget.
	if code := hitFrom(t, h, "10.0.0.2:5000"); code != http.StatusOK {
		t.Fatalf("second client: expected 200, got %d", code)
	}
}
