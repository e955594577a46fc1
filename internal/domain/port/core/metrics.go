package core

// Metrics records outcomes of the buffered logger that never reach the caller
type Metrics interface {
	// SinkFailure counts a contained debug sink error or panic
	SinkFailure(sink string)
	// EventPublished records a successful report
	EventPublished(truncated bool, elapsed Duration)
	// PublishFailure counts a report the publisher rejected
	PublishFailure(elapsed Duration)
}

// NoopMetrics discards every measurement
type NoopMetrics struct{}

// SinkFailure implements Metrics
func (NoopMetrics) SinkFailure(string) {}

// EventPublished implements Metrics
func (NoopMetrics) EventPublished(bool, Duration) {}

// PublishFailure implements Metrics
func (NoopMetrics) PublishFailure(Duration) {}
