package notify

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"adrecon/internal/core/domain"
)

// Metrics counts outcomes by kind and error code. Successful outcomes are
// counted with code "ok".
type Metrics struct {
	outcomes *prometheus.CounterVec
}

// NewMetrics registers the outcome counters with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		outcomes: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "adrecon_outcomes_total",
			Help: "Processed operations by kind and result code.",
		}, []string{"kind", "code"}),
	}
}

func (m *Metrics) Notify(_ context.Context, outcome domain.Outcome) {
	code := "ok"
	if outcome.Failed {
		code = string(outcome.Code)
	}
	m.outcomes.WithLabelValues(string(outcome.Kind), code).Inc()
}
