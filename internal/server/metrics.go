// Package server exposes operational metrics over HTTP while a calculation
// runs. It registers application metrics on a dedicated Prometheus registry
// alongside the Go runtime and process collectors, and serves them with a
// health probe on a small, gracefully shut-down HTTP server.
package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the application's Prometheus instruments. A dedicated
// registry keeps tests isolated from the default global registry.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	calculationsTotal   *prometheus.CounterVec
	calculationDuration *prometheus.HistogramVec
	requestsTotal       prometheus.Counter
	activeRequests      prometheus.Gauge
}

// NewMetrics creates a Metrics with all instruments registered on a fresh
// registry, including the Go runtime and process collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		registry: registry,
		calculationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cosmocalc_calculations_total",
			Help: "Number of distance calculations, by quadrature scheme and outcome.",
		}, []string{"scheme", "status"}),
		calculationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cosmocalc_calculation_duration_seconds",
			Help:    "Distance calculation duration, by quadrature scheme.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"scheme"}),
		requestsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "cosmocalc_requests_total",
			Help: "Number of HTTP requests served by the metrics listener.",
		}),
		activeRequests: factory.NewGauge(prometheus.GaugeOpts{
			Name: "cosmocalc_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
	}

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// ObserveCalculation records one completed calculation for a scheme.
// Status is "success" or "failure".
func (m *Metrics) ObserveCalculation(scheme, status string, duration time.Duration) {
	m.calculationsTotal.WithLabelValues(scheme, status).Inc()
	m.calculationDuration.WithLabelValues(scheme).Observe(duration.Seconds())
}

// IncrementActiveRequests increases the in-flight request gauge.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
	m.requestsTotal.Inc()
}

// DecrementActiveRequests decreases the in-flight request gauge.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// WritePrometheus serves the registry contents in the Prometheus text format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
