package hanoi

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeFound          = "found"
	outcomeDepthLimit     = "depth_limit"
	outcomeExhausted      = "exhausted"
	outcomeExpansionLimit = "expansion_limit"
)

// Metrics counts search work. A nil *Metrics is valid and records nothing.
type Metrics struct {
	expanded  *prometheus.CounterVec
	generated *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	searches  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		expanded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hanoi",
			Subsystem: "search",
			Name:      "expanded_nodes_total",
			Help:      "Nodes removed from the frontier and expanded",
		}, []string{"strategy"}),
		generated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hanoi",
			Subsystem: "search",
			Name:      "generated_nodes_total",
			Help:      "Child nodes created by the move generator",
		}, []string{"strategy"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hanoi",
			Subsystem: "search",
			Name:      "rejected_moves_total",
			Help:      "Candidate moves discarded as illegal",
		}, []string{"strategy"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hanoi",
			Subsystem: "search",
			Name:      "runs_total",
			Help:      "Completed searches by outcome",
		}, []string{"strategy", "outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.expanded, m.generated, m.rejected, m.searches)
	}
	return m
}

func (m *Metrics) observeExpansion(strategy Strategy, generated int) {
	if m == nil {
		return
	}
	m.expanded.WithLabelValues(strategy.String()).Inc()
	m.generated.WithLabelValues(strategy.String()).Add(float64(generated))
}

func (m *Metrics) observeRejected(strategy Strategy) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(strategy.String()).Inc()
}

func (m *Metrics) observeOutcome(strategy Strategy, outcome string) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(strategy.String(), outcome).Inc()
}
