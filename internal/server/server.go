package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/agbru/cosmocalc/internal/logging"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// SecurityConfig controls the security headers and CORS behavior of the
// metrics listener.
type SecurityConfig struct {
	// EnableCORS toggles CORS header handling.
	EnableCORS bool
	// AllowedOrigins lists origins allowed to read the endpoints ("*" for any).
	AllowedOrigins []string
	// AllowedMethods lists the HTTP methods the endpoints accept.
	AllowedMethods []string
}

// DefaultSecurityConfig returns the default security configuration: CORS
// enabled for any origin, read-only methods.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// SecurityMiddleware sets standard security headers and handles CORS,
// including preflight requests, before delegating to next.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			origin := r.Header.Get("Origin")
			if origin != "" && originAllowed(origin, config.AllowedOrigins) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		next(w, r)
	}
}

func originAllowed(origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}

// Server exposes the metrics registry and a health probe over HTTP.
type Server struct {
	addr     string
	metrics  *Metrics
	logger   logging.Logger
	security SecurityConfig
}

// NewServer creates a metrics server listening on addr once Serve is called.
func NewServer(addr string, metrics *Metrics, logger logging.Logger) *Server {
	return &Server{
		addr:     addr,
		metrics:  metrics,
		logger:   logger,
		security: DefaultSecurityConfig(),
	}
}

// Metrics returns the server's metrics instruments for recording.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// metricsMiddleware tracks in-flight and total requests around next.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		next(w, r)
	}
}

// handleMetrics serves the Prometheus registry on GET, rejecting other methods.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("rejected metrics request",
			logging.String("method", r.Method),
			logging.String("remote", r.RemoteAddr))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// handleHealth serves the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// Handler builds the full middleware-wrapped route mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleMetrics)))
	mux.HandleFunc("/healthz", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleHealth)))
	return mux
}

// Serve runs the HTTP listener until ctx is canceled, then shuts down
// gracefully. It returns nil on a clean shutdown.
func (s *Server) Serve(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("metrics listener started", logging.String("addr", s.addr))
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("metrics listener shutdown failed", err)
			return err
		}
		s.logger.Info("metrics listener stopped")
		return nil
	}
}
