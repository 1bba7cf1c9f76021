package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/glowbook/salon-directory/internal/health"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Auth metrics

	SignupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "salondir",
		Name:      "signups_total",
		Help:      "Total successful signups.",
	})

	LoginsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salondir",
		Name:      "logins_total",
		Help:      "Total login attempts, by outcome.",
	}, []string{"outcome"})

	// Password reset metrics

	ResetRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "salondir",
		Name:      "reset_requests_total",
		Help:      "Total forgot-password requests accepted.",
	})

	ResetsCompletedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "salondir",
		Name:      "resets_completed_total",
		Help:      "Total successful password resets.",
	})

	ResetTokensSweptTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "salondir",
		Name:      "reset_tokens_swept_total",
		Help:      "Total expired reset tokens removed by the sweeper.",
	})

	// HTTP metrics

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "salondir",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "salondir",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests.",
	}, []string{"method", "path", "status"})
)

func Register() {
	prometheus.MustRegister(
		SignupsTotal,
		LoginsTotal,
		ResetRequestsTotal,
		ResetsCompletedTotal,
		ResetTokensSweptTotal,
		HTTPRequestDuration,
		HTTPRequestsTotal,
	)
}

// NewServer serves /metrics plus liveness and readiness probes on the
// internal port.
func NewServer(addr string, checker *health.Checker) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, http.StatusOK, checker.Liveness(r.Context()))
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		result := checker.Readiness(r.Context())
		status := http.StatusOK
		if result.Status != "up" {
			status = http.StatusServiceUnavailable
		}
		writeHealth(w, status, result)
	})

	return &http.Server{Addr: addr, Handler: mux}
}

func writeHealth(w http.ResponseWriter, status int, result health.HealthResult) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(result)
}
