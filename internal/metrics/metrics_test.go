package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistration(t *testing.T) {
	// Touching every collector verifies registration happened without
	// duplicate-name panics at package init.
	metrics := []prometheus.Collector{
		MoodDetectionsTotal,
		MoodDetectionDuration,
		CollaboratorFailures,
		CollaboratorBreakerState,
		AnalyticsRequestsTotal,
		AnalyticsDuration,
		InsightsCacheHits,
		InsightsCacheMisses,
		BatchDetectionsTotal,
		DBQueryDuration,
		DBErrorsTotal,
		BuildInfo,
	}

	for _, metric := range metrics {
		assert.NotNil(t, metric)
	}
}

func TestStartDetectionTimer(t *testing.T) {
	timer := StartDetectionTimer()
	assert.NotNil(t, timer)
	timer.ObserveDuration()
}
