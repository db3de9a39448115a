package relay

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts relay outcomes per event type.
type Metrics struct {
	published *prometheus.CounterVec
	failed    *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		published: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "outbox_events_published_total",
			Help: "Outbox events delivered to the broker.",
		}, []string{"event_type"}),
		failed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "outbox_events_failed_total",
			Help: "Outbox publish attempts that failed.",
		}, []string{"event_type"}),
	}
}

func (m *Metrics) Published(eventType string) {
	m.published.WithLabelValues(eventType).Inc()
}

func (m *Metrics) Failed(eventType string) {
	m.failed.WithLabelValues(eventType).Inc()
}
