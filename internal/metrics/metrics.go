package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "workdesk_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "workdesk_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	entityWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "workdesk_entity_writes_total",
		Help: "Committed entity writes by kind and action",
	}, []string{"kind", "action"})

	snapshotDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "workdesk_dashboard_snapshot_duration_seconds",
		Help:    "Time to serve a dashboard snapshot, cached or computed",
		Buckets: prometheus.DefBuckets,
	})
)

// ObserveHTTPRequest records an HTTP request metric. route is the matched
// route template, not the raw path.
func ObserveHTTPRequest(method, route, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// ObserveEntityWrite has the signature of service.WriteObserver.
func ObserveEntityWrite(kind, action string) {
	entityWrites.WithLabelValues(kind, action).Inc()
}

func ObserveSnapshot(duration time.Duration) {
	snapshotDuration.Observe(duration.Seconds())
}
