package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shopflow/shopflow/pkg/shop"
)

// Metrics holds the Prometheus collectors for the shopping flow.
type Metrics struct {
	transitions *prometheus.CounterVec
	cartItems   prometheus.Gauge
}

// NewMetrics creates and registers the collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopflow_transitions_total",
				Help: "Total number of state transitions, by operation and edge.",
			},
			[]string{"op", "from", "to"},
		),
		cartItems: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "shopflow_cart_items",
				Help: "Number of items currently in the cart.",
			},
		),
	}
	reg.MustRegister(m.transitions, m.cartItems)
	return m
}

// TransitionCounter exposes the transition counter vec, mainly for tests.
func (m *Metrics) TransitionCounter() *prometheus.CounterVec {
	return m.transitions
}

// Hooks returns the FlowHooks to register with VisitSite.
func (m *Metrics) Hooks() shop.FlowHooks {
	return shop.FlowHooks{
		OnTransition: func(e *shop.TransitionEvent) {
			m.transitions.WithLabelValues(string(e.Op), string(e.From), string(e.To)).Inc()
			m.cartItems.Set(float64(len(e.Cart)))
		},
	}
}
