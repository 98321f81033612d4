package stems

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts derivations and check outcomes.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	derivations *prometheus.CounterVec
	entries     *prometheus.CounterVec
	faults      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		derivations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stems",
			Name:      "derivations_total",
			Help:      "Stem sets derived, by verb class and outcome.",
		}, []string{"class", "outcome"}),
		entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stems",
			Name:      "lexicon_entries_total",
			Help:      "Lexicon entries visited by the checker, by partition and result.",
		}, []string{"partition", "result"}),
		faults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stems",
			Name:      "lexicon_faults_total",
			Help:      "Partition checks that stopped on a fault, by partition and kind.",
		}, []string{"partition", "kind"}),
	}
	if reg != nil {
		reg.MustRegister(m.derivations, m.entries, m.faults)
	}
	return m
}

func (m *Metrics) derived(class VerbClass, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "shape_error"
	}
	m.derivations.WithLabelValues(string(class), outcome).Inc()
}

func (m *Metrics) entry(partition, result string) {
	if m == nil {
		return
	}
	m.entries.WithLabelValues(partition, result).Inc()
}

func (m *Metrics) fault(partition, kind string) {
	if m == nil {
		return
	}
	m.faults.WithLabelValues(partition, kind).Inc()
}
