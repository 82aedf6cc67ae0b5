package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the storefront counters. Build one per process (or per test
// with a fresh registry) and inject it where increments happen.
type Metrics struct {
	CartItemsAdded   prometheus.Counter
	OrdersSubmitted  prometheus.Counter
	OrdersFailed     prometheus.Counter
	CheckoutRejected prometheus.Counter

	registry *prometheus.Registry
}

// New registers the storefront counters on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		CartItemsAdded: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_cart_items_added_total",
			Help: "Cart add-item operations accepted.",
		}),
		OrdersSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_orders_submitted_total",
			Help: "Orders successfully created upstream (one per cart line).",
		}),
		OrdersFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_orders_failed_total",
			Help: "Checkout submissions aborted by an upstream failure.",
		}),
		CheckoutRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "storefront_checkout_rejected_total",
			Help: "Checkout requests blocked by customer form validation.",
		}),
		registry: reg,
	}
}

// Handler exposes the registry for the /metrics route.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
