package repo

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for upstream prison API calls.
// Outcome is one of "ok", "empty" (resolved with no data), or "error".
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates a Metrics instance with all upstream call metrics
// registered on the default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		Requests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "prisonerhub_upstream_requests_total",
			Help: "Total prison API requests by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		Duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "prisonerhub_upstream_request_duration_seconds",
			Help:    "Duration of prison API requests by endpoint",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"endpoint"}),
	}
}

// Observe records one completed upstream call.
// Call with time.Now() captured at the start of the request.
func (m *Metrics) Observe(endpoint, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(endpoint, outcome).Inc()
	m.Duration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
