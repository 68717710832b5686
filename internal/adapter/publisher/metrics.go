package publisher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
)

const (
	resultPublished = "published"
	resultFailed    = "failed"
)

// Metrics counts publish attempts by event type and result.
type Metrics struct {
	published *prometheus.CounterVec
}

// NewMetrics registers the publisher counters on registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		published: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Name: "workhoops_events_published_total",
			Help: "Domain events handed to the event bus, by type and result.",
		}, []string{"type", "result"}),
	}
}

func (m *Metrics) observe(eventType entity.EventType, err error) {
	if m == nil {
		return
	}
	result := resultPublished
	if err != nil {
		result = resultFailed
	}
	m.published.WithLabelValues(string(eventType), result).Inc()
}
