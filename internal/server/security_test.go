package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestDefaultSecurityConfig verifies default security configuration values.
func TestDefaultSecurityConfig(t *testing.T) {
	config := DefaultSecurityConfig()

	t.Run("EnableCORS is true", func(t *testing.T) {
		if !config.EnableCORS {
			t.Error("EnableCORS should be true by default")
		}
	})

	t.Run("AllowedOrigins contains wildcard", func(t *testing.T) {
		if len(config.AllowedOrigins) != 1 || config.AllowedOrigins[0] != "*" {
			t.Errorf("AllowedOrigins = %v, want [\"*\"]", config.AllowedOrigins)
		}
	})

	t.Run("AllowedMethods contains GET and OPTIONS", func(t *testing.T) {
		if len(config.AllowedMethods) != 2 {
			t.Errorf("AllowedMethods = %v, want [\"GET\", \"OPTIONS\"]", config.AllowedMethods)
		}
		hasGet := false
		hasOptions := false
		for _, m := range config.AllowedMethods {
			if m == "GET" {
				hasGet = true
			}
			if m == "OPTIONS" {
				hasOptions = true
			}
		}
		if !hasGet || !hasOptions {
			t.Errorf("AllowedMethods = %v, want [\"GET\", \"OPTIONS\"]", config.AllowedMethods)
		}
	})
}

// TestSecurityMiddleware_SecurityHeaders tests that all security headers are set.
func TestSecurityMiddleware_SecurityHeaders(t *testing.T) {
	config := DefaultSecurityConfig()
	nextCalled := false
	next := func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	}

	handler := SecurityMiddleware(config, next)
	req := httptest.NewRequest("GET", "/test", http.NoBody)
	rec := httptest.NewRecorder()

	handler(rec, req)

	tests := []struct {
		header string
		want   string
	}{
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
		{"X-XSS-Protection", "1; mode=block"},
		{"Referrer-Policy", "strict-origin-when-cross-origin"},
		{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got := rec.Header().Get(tt.header)
			if got != tt.want {
				t.Errorf("%s = %q, want %q", tt.header, got, tt.want)
			}
		})
	}

	if !nextCalled {
		t.Error("next handler was not called")
	}
}

// TestSecurityMiddleware_CORS tests CORS header handling.
func TestSecurityMiddleware_CORS(t *testing.T) {
	tests := []struct {
		name              string
		config            SecurityConfig
		origin            string
		wantAllowedOrigin string
	}{
		{
			name: "Wildcard origin echoes requester",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET"},
			},
			origin:            "https://example.com",
			wantAllowedOrigin: "https://example.com",
		},
		{
			name: "Exact origin match",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"https://grafana.internal"},
				AllowedMethods: []string{"GET"},
			},
			origin:            "https://grafana.internal",
			wantAllowedOrigin: "https://grafana.internal",
		},
		{
			name: "Disallowed origin gets no header",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"https://grafana.internal"},
				AllowedMethods: []string{"GET"},
			},
			origin:            "https://evil.example",
			wantAllowedOrigin: "",
		},
		{
			name: "CORS disabled sets no header",
			config: SecurityConfig{
				EnableCORS: false,
			},
			origin:            "https://example.com",
			wantAllowedOrigin: "",
		},
		{
			name: "No Origin header sets no header",
			config: SecurityConfig{
				EnableCORS:     true,
				AllowedOrigins: []string{"*"},
				AllowedMethods: []string{"GET"},
			},
			origin:            "",
			wantAllowedOrigin: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			handler := SecurityMiddleware(tt.config, func(w http.ResponseWriter, r *http.Request) {})
			req := httptest.NewRequest("GET", "/metrics", http.NoBody)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			handler(rec, req)

			got := rec.Header().Get("Access-Control-Allow-Origin")
			if got != tt.wantAllowedOrigin {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.wantAllowedOrigin)
			}
		})
	}
}

// TestSecurityMiddleware_Preflight tests OPTIONS preflight handling.
func TestSecurityMiddleware_Preflight(t *testing.T) {
	config := DefaultSecurityConfig()
	nextCalled := false
	handler := SecurityMiddleware(config, func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	req := httptest.NewRequest("OPTIONS", "/metrics", http.NoBody)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if nextCalled {
		t.Error("next handler should not be called for preflight requests")
	}
}

// TestSecurityMiddleware_NextHandlerCalled tests delegation for normal requests.
func TestSecurityMiddleware_NextHandlerCalled(t *testing.T) {
	config := DefaultSecurityConfig()
	nextCalled := false
	handler := SecurityMiddleware(config, func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if !nextCalled {
		t.Error("next handler was not called")
	}
}
