package metrics

import (
	"strconv"

	"github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "logrelay"

// PrometheusMetrics records buffered logger outcomes and HTTP traffic as Prometheus collectors
type PrometheusMetrics struct {
	sinkFailures     *prometheus.CounterVec
	eventsPublished  *prometheus.CounterVec
	publishFailures  prometheus.Counter
	publishLatency   *prometheus.HistogramVec
	requestCounter   *prometheus.CounterVec
	latencyHistogram *prometheus.HistogramVec
}

// NewPrometheusMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		sinkFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "debug_sink_failures_total",
				Help:      "Debug sink writes that failed or panicked",
			},
			[]string{"sink"},
		),
		eventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_published_total",
				Help:      "Buffered log reports accepted by the publisher",
			},
			[]string{"truncated"},
		),
		publishFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "publish_failures_total",
				Help:      "Buffered log reports rejected by the publisher",
			},
		),
		publishLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "publish_duration_seconds",
				Help:      "Publish latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"outcome"},
		),
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests",
			},
			[]string{"path", "method", "status"},
		),
		latencyHistogram: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),
	}

	reg.MustRegister(
		m.sinkFailures,
		m.eventsPublished,
		m.publishFailures,
		m.publishLatency,
		m.requestCounter,
		m.latencyHistogram,
	)
	return m
}

// SinkFailure implements core.Metrics
func (m *PrometheusMetrics) SinkFailure(sink string) {
	m.sinkFailures.WithLabelValues(sink).Inc()
}

// EventPublished implements core.Metrics
func (m *PrometheusMetrics) EventPublished(truncated bool, elapsed core.Duration) {
	m.eventsPublished.WithLabelValues(strconv.FormatBool(truncated)).Inc()
	m.publishLatency.WithLabelValues("success").Observe(elapsed.Std().Seconds())
}

// PublishFailure implements core.Metrics
func (m *PrometheusMetrics) PublishFailure(elapsed core.Duration) {
	m.publishFailures.Inc()
	m.publishLatency.WithLabelValues("failure").Observe(elapsed.Std().Seconds())
}

// ObserveRequest records one HTTP request
func (m *PrometheusMetrics) ObserveRequest(path, method string, status int, elapsed core.Duration) {
	m.requestCounter.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.latencyHistogram.WithLabelValues(path, method).Observe(elapsed.Std().Seconds())
}
