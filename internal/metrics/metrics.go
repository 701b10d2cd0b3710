package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Split submission outcomes
const (
	OutcomeApplied = "applied"
	OutcomeNoop    = "noop"
	OutcomeFailed  = "failed"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	FriendsAdded       prometheus.Counter
	SelectionsToggled  prometheus.Counter
	SplitsSubmitted    *prometheus.CounterVec
	PayerShareRejected prometheus.Counter
}

// New creates the metrics and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		FriendsAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "eatnsplit_friends_added_total",
			Help: "Total number of friends added",
		}),
		SelectionsToggled: factory.NewCounter(prometheus.CounterOpts{
			Name: "eatnsplit_selections_toggled_total",
			Help: "Total number of friend selection toggles",
		}),
		SplitsSubmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "eatnsplit_splits_submitted_total",
			Help: "Bill split submissions by outcome",
		}, []string{"outcome"}),
		PayerShareRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "eatnsplit_payer_share_rejected_total",
			Help: "Payer share entries rejected for exceeding the bill",
		}),
	}
}

// IncrementFriendsAdded increments the friends added counter by 1
func (m *Metrics) IncrementFriendsAdded() {
	m.FriendsAdded.Inc()
}

// IncrementSelectionsToggled increments the selection counter by 1
func (m *Metrics) IncrementSelectionsToggled() {
	m.SelectionsToggled.Inc()
}

// ObserveSplit records one split submission with the given outcome
func (m *Metrics) ObserveSplit(outcome string) {
	m.SplitsSubmitted.WithLabelValues(outcome).Inc()
}

// IncrementPayerShareRejected increments the overpayment counter by 1
func (m *Metrics) IncrementPayerShareRejected() {
	m.PayerShareRejected.Inc()
}
