package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsHandler(reached *bool) http.Handler {
	wrap := CORS([]string{"http://localhost:5173"})
	return wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if reached != nil {
			*reached = true
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestCORSAllowedOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	corsHandler(nil).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q, want allowed origin echoed", got)
	}
}

func TestCORSDisallowedOrigin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	corsHandler(nil).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q for disallowed origin, want empty", got)
	}
	if got := rec.Header().Values("Vary"); len(got) == 0 {
		t.Error("Vary header missing; caches could serve the response cross-origin")
	}
}

func TestCORSPreflight(t *testing.T) {
	var reached bool
	req := httptest.NewRequest(http.MethodOptions, "/api/lookup", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	corsHandler(&reached).ServeHTTP(rec, req)

	if reached {
		t.Error("preflight request reached the router")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != http.MethodPost {
		t.Errorf("Access-Control-Allow-Methods = %q, want %q", got, http.MethodPost)
	}
}

// A plain OPTIONS request without a requested method is not a preflight and
// must pass through to the router.
func TestCORSNonPreflightOptionsPassesThrough(t *testing.T) {
	var reached bool
	req := httptest.NewRequest(http.MethodOptions, "/api/lookup", nil)
	rec := httptest.NewRecorder()
	corsHandler(&reached).ServeHTTP(rec, req)

	if !reached {
		t.Error("non-preflight OPTIONS request never reached the router")
	}
}
