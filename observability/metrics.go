package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// number of user contexts sampled
	ContextSampleCount = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "banditsim_contexts_sampled_total",
			Help: "Total user contexts sampled",
		},
	)

	// number of reward draws, labelled by arm and outcome
	RewardDrawCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "banditsim_reward_draws_total",
			Help: "Total Bernoulli reward draws",
		},
		[]string{"arm", "reward"},
	)

	// distribution of true click probabilities behind reward draws
	ClickProbability = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "banditsim_click_probability",
			Help:    "Histogram of true click probabilities at draw time",
			Buckets: prometheus.LinearBuckets(0, 0.05, 21),
		},
	)
)

func init() {
	// register all metrics
	prometheus.MustRegister(
		ContextSampleCount,
		RewardDrawCount,
		ClickProbability,
	)
}
