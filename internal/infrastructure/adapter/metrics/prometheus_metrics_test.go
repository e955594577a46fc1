package metrics

import (
	"testing"

	"github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)

	var _ core.Metrics = m

	t.Run("Sink failures by sink", func(t *testing.T) {
		m.SinkFailure("zap")
		m.SinkFailure("zap")
		m.SinkFailure("stderr")

		assert.Equal(t, 2.0, testutil.ToFloat64(m.sinkFailures.WithLabelValues("zap")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.sinkFailures.WithLabelValues("stderr")))
	})

	t.Run("Publish outcomes", func(t *testing.T) {
		m.EventPublished(false, 10*core.Millisecond)
		m.EventPublished(true, 20*core.Millisecond)
		m.PublishFailure(core.Second)

		assert.Equal(t, 1.0, testutil.ToFloat64(m.eventsPublished.WithLabelValues("true")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.eventsPublished.WithLabelValues("false")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.publishFailures))
		assert.Equal(t, 2, testutil.CollectAndCount(m.publishLatency))
	})

	t.Run("HTTP requests", func(t *testing.T) {
		m.ObserveRequest("/api/v1/logs", "POST", 201, 5*core.Millisecond)

		assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCounter.WithLabelValues("/api/v1/logs", "POST", "201")))
		assert.Equal(t, 1, testutil.CollectAndCount(m.latencyHistogram))
	})
}

func TestPrometheusMetricsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusMetrics(reg)

	assert.Panics(t, func() { NewPrometheusMetrics(reg) })
}
