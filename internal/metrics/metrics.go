package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "utube_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "utube_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AggregationDuration times each view pipeline.
	AggregationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "utube_view_aggregation_duration_seconds",
			Help:    "Latency of view assembly aggregation pipelines",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"view"},
	)

	TogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "utube_toggles_total",
			Help: "Like and subscription toggles by outcome",
		},
		[]string{"relation", "state"},
	)

	MediaUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "utube_media_uploads_total",
			Help: "Media uploads by kind",
		},
		[]string{"kind"},
	)

	MediaCleanupTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "utube_media_cleanup_total",
			Help: "Background media deletions by result",
		},
		[]string{"result"},
	)

	MediaCleanupQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "utube_media_cleanup_queue_depth",
			Help: "Media URLs waiting for deletion",
		},
	)
)
