package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viewtube_http_requests_total",
			Help: "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes request latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "viewtube_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// EngagementTogglesTotal counts like toggles by target kind and the
	// resulting state.
	EngagementTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viewtube_engagement_toggles_total",
			Help: "Total number of like toggles by target kind and resulting state.",
		},
		[]string{"target_kind", "state"},
	)

	// SubscriptionTogglesTotal counts subscription toggles by the resulting
	// state.
	SubscriptionTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viewtube_subscription_toggles_total",
			Help: "Total number of subscription toggles by resulting state.",
		},
		[]string{"state"},
	)
)
