package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Mood Detection Metrics
var (
	// MoodDetectionsTotal tracks fused mood decisions by resulting label
	MoodDetectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mood_detections_total",
			Help: "Total mood detections by resulting primary mood",
		},
		[]string{"mood"},
	)

	// MoodDetectionDuration tracks full detection pipeline latency
	MoodDetectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mood_detection_duration_seconds",
			Help:    "Mood detection pipeline duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
	)

	// CollaboratorFailures tracks degraded external model calls by collaborator
	CollaboratorFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "collaborator_failures_total",
			Help: "External model calls that failed or were unavailable (classifier/generative)",
		},
		[]string{"collaborator"},
	)

	// CollaboratorBreakerState tracks the classifier circuit breaker state (0=closed, 1=half-open, 2=open)
	CollaboratorBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "classifier_circuit_breaker_state",
			Help: "Emotion classifier circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)
)

// Analytics Metrics
var (
	// AnalyticsRequestsTotal tracks analytics computations by request type
	AnalyticsRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_requests_total",
			Help: "Total analytics requests by type (insights/distribution/sentiment/word_cloud/patterns/correlations)",
		},
		[]string{"type"},
	)

	// AnalyticsDuration tracks analytics computation latency by request type
	AnalyticsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "analytics_duration_seconds",
			Help:    "Analytics computation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"type"},
	)

	// InsightsCacheHits tracks insights served from the Redis cache
	InsightsCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "insights_cache_hits_total",
			Help: "Total insights requests served from the Redis cache",
		},
	)

	// InsightsCacheMisses tracks insights that had to be recomputed
	InsightsCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "insights_cache_misses_total",
			Help: "Total insights requests recomputed after a cache miss",
		},
	)

	// BatchDetectionsTotal tracks batch auto-detection outcomes per entry
	BatchDetectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "batch_detections_total",
			Help: "Entries processed by batch mood detection by result (updated/failed/skipped)",
		},
		[]string{"result"},
	)
)

// Database Metrics
var (
	// DBQueryDuration tracks database query duration by query name
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"query"},
	)

	// DBErrorsTotal tracks database errors by query name
	DBErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_errors_total",
			Help: "Total database errors by query",
		},
		[]string{"query"},
	)
)

// Build Information Metrics
var (
	// BuildInfo is a gauge that always returns 1, with build metadata as labels
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "build_info",
			Help: "Build information with version, commit, build_time, and go_version labels (value is always 1)",
		},
		[]string{"version", "commit", "build_time", "go_version"},
	)
)

// StartDetectionTimer starts a timer observing into MoodDetectionDuration.
func StartDetectionTimer() *prometheus.Timer {
	return prometheus.NewTimer(MoodDetectionDuration)
}
