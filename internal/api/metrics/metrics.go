// Package metrics defines and registers all custom Prometheus metrics for
// the distribution service. It is the single source of truth for metric
// names, labels, and help strings. Metrics register with the default
// registry at init time; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "distribution"

// ── Users-service gateway metrics ─────────────────────────────────────────

// UpstreamRequestsTotal counts individual HTTP attempts against the users
// service, including retry attempts.
// Labels:
//   - endpoint: logical upstream endpoint ("admins", "users", "clients", "user_by_id")
//   - outcome: "ok", an HTTP status code, "network_error", or "read_error"
var UpstreamRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "Total number of HTTP attempts against the users service.",
	},
	[]string{"endpoint", "outcome"},
)

// UpstreamRetriesTotal counts attempts that failed with the retryable
// transient signal and were scheduled for another attempt.
var UpstreamRetriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_retries_total",
		Help:      "Total number of retries scheduled against the users service.",
	},
	[]string{"endpoint"},
)

// UpstreamRequestDuration measures the latency of a single upstream attempt.
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of individual users-service requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"endpoint"},
)

// AdminCacheTotal counts admin-list cache lookups.
// Label:
//   - result: "hit" or "miss"
var AdminCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_cache_total",
		Help:      "Total number of admin-list cache lookups, labelled by result.",
	},
	[]string{"result"},
)

// ── Fare metrics ──────────────────────────────────────────────────────────

// FaresCreatedTotal counts newly created fares.
// Label:
//   - fare_type: the fare's billing period type (e.g. "DIARIA", "MENSUAL")
var FaresCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fares_created_total",
		Help:      "Total number of fares created, by fare type.",
	},
	[]string{"fare_type"},
)
