package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/Nrvenki/recipe/internal/health"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "recipeapi",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "recipeapi",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})

	// Password reset metrics

	ResetEmailsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "recipeapi",
		Name:      "reset_emails_total",
		Help:      "Reset-code emails attempted, by outcome.",
	}, []string{"outcome"})

	// Keep-alive metrics

	KeepAlivePingsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "recipeapi",
		Name:      "keepalive_pings_total",
		Help:      "Self health-check pings issued, by outcome.",
	}, []string{"outcome"})
)

func Register() {
	prometheus.MustRegister(
		HTTPRequestDuration,
		HTTPRequestsTotal,
		ResetEmailsTotal,
		KeepAlivePingsTotal,
	)
}

// NewServer serves /metrics plus the liveness and readiness probes on the
// internal metrics port, away from the public API surface.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, health.HealthResult{Status: "up"}, http.StatusOK)
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		result := checker.Readiness(r.Context())
		status := http.StatusOK
		if result.Status != "up" {
			status = http.StatusServiceUnavailable
		}
		writeHealth(w, result, status)
	})
	return &http.Server{Addr: addr, Handler: mux}
}

func writeHealth(w http.ResponseWriter, result health.HealthResult, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(result)
}
