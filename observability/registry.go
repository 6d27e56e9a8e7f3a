package observability

import "strconv"

// MetricsRegistry provides an interface for recording environment metrics
// This replaces direct access to global Prometheus metrics with dependency injection
type MetricsRegistry interface {
	// Context sampling metrics
	IncrementContextsSampled()

	// Reward draw metrics
	IncrementRewardDraws(arm string, reward int)
	RecordClickProbability(p float64)
}

// PrometheusRegistry implements MetricsRegistry using the global Prometheus metrics
type PrometheusRegistry struct{}

// NewPrometheusRegistry creates a new PrometheusRegistry
func NewPrometheusRegistry() *PrometheusRegistry {
	return &PrometheusRegistry{}
}

func (r *PrometheusRegistry) IncrementContextsSampled() {
	ContextSampleCount.Inc()
}

func (r *PrometheusRegistry) IncrementRewardDraws(arm string, reward int) {
	RewardDrawCount.WithLabelValues(arm, strconv.Itoa(reward)).Inc()
}

func (r *PrometheusRegistry) RecordClickProbability(p float64) {
	ClickProbability.Observe(p)
}

// NoOpRegistry implements MetricsRegistry with no-op methods for testing
type NoOpRegistry struct{}

// NewNoOpRegistry creates a new NoOpRegistry
func NewNoOpRegistry() *NoOpRegistry {
	return &NoOpRegistry{}
}

func (r *NoOpRegistry) IncrementContextsSampled()                   {}
func (r *NoOpRegistry) IncrementRewardDraws(arm string, reward int) {}
func (r *NoOpRegistry) RecordClickProbability(p float64)            {}
