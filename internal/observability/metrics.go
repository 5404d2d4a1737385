// Package observability holds the process-wide Prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Engine ─────────────────────────────────────────────────────────────────

var LoanScore = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "bilantra",
	Subsystem: "engine",
	Name:      "loan_score",
	Help:      "Distribution of computed loan readiness scores.",
	Buckets:   prometheus.LinearBuckets(0, 10, 11),
})

var InsightsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bilantra",
	Subsystem: "engine",
	Name:      "insights_total",
	Help:      "Insights emitted, by kind.",
}, []string{"kind"})

// ─── Store ──────────────────────────────────────────────────────────────────

var StoreOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bilantra",
	Subsystem: "store",
	Name:      "ops_total",
	Help:      "Session store operations by backend, operation and result.",
}, []string{"backend", "op", "result"})

var SessionsExpired = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "bilantra",
	Subsystem: "store",
	Name:      "sessions_expired_total",
	Help:      "Sessions removed after exceeding the inactivity window.",
})

// ─── HTTP ───────────────────────────────────────────────────────────────────

var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bilantra",
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "HTTP requests by method, route pattern and status code.",
}, []string{"method", "route", "status"})

var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "bilantra",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by route pattern.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route"})

// Result maps an error to the "result" label value.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
