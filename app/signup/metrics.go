package signup

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/km-arc/go-signup/framework/http/validation"
)

// Metrics counts submissions and the rules that rejected them.
type Metrics struct {
	Submissions *prometheus.CounterVec
	FieldErrors *prometheus.CounterVec
}

// NewMetrics registers the signup counters on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "signup",
			Name:      "submissions_total",
			Help:      "Form submissions by result (valid, invalid)",
		}, []string{"result"}),
		FieldErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "signup",
			Name:      "field_errors_total",
			Help:      "Rejected fields by field name and failure kind",
		}, []string{"field", "kind"}),
	}
}

// Observe records the outcome of one submission. Safe on a nil *Metrics.
func (m *Metrics) Observe(outcome Status, errs *validation.Errors) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(outcome.String()).Inc()
	for _, field := range errs.Fields() {
		m.FieldErrors.WithLabelValues(field, string(errs.Kind(field))).Inc()
	}
}
