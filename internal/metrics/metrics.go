// Package metrics exposes the storefront's Prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry        *prometheus.Registry
	OrdersPlaced    prometheus.Counter
	CartOps         *prometheus.CounterVec
	OutboxPublished prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	m := &Metrics{
		registry: reg,
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Orders successfully placed through checkout.",
		}),
		CartOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_cart_operations_total",
			Help: "Cart mutations by operation.",
		}, []string{"op"}),
		OutboxPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_outbox_published_total",
			Help: "Order events successfully published to the broker.",
		}),
	}
	reg.MustRegister(m.OrdersPlaced, m.CartOps, m.OutboxPublished)
	return m
}

// Handler serves the registry for the /metrics route.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
