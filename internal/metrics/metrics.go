package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	StoriesServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stories_served_total",
			Help: "Total number of stories returned in feed pages",
		},
	)

	FeedPagesFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_pages_fetched_total",
			Help: "Total number of feed page loads",
		},
		[]string{"status"},
	)

	ReactionsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reactions_recorded_total",
			Help: "Total number of like/skip reactions recorded",
		},
		[]string{"reaction"},
	)

	ReactionPublishFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reaction_publish_failures_total",
			Help: "Total number of reaction events that failed to publish",
		},
	)

	ApplicationInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "application_info",
			Help: "Application information",
		},
		[]string{"service", "version"},
	)
)

// Init sets static metric values.
func Init(serviceName, version string) {
	ApplicationInfo.WithLabelValues(serviceName, version).Set(1)
}
