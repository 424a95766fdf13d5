package device

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds Prometheus metrics for the classification pipeline.
type Metrics struct {
	EvaluationsTotal *prometheus.CounterVec
	AnchorsTotal     *prometheus.CounterVec
	RuleMatchesTotal *prometheus.CounterVec
}

// NewMetrics registers and returns pipeline metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EvaluationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "devicekit_evaluations_total",
			Help: "Total pipeline evaluations by reported category and trigger.",
		}, []string{"category", "trigger"}),
		AnchorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "devicekit_anchors_total",
			Help: "Total session anchors by first-resolved category.",
		}, []string{"category"}),
		RuleMatchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "devicekit_rule_matches_total",
			Help: "Total classifier rule matches by cascade step and rule name.",
		}, []string{"step", "rule"}),
	}

	reg.MustRegister(
		m.EvaluationsTotal,
		m.AnchorsTotal,
		m.RuleMatchesTotal,
	)

	return m
}
