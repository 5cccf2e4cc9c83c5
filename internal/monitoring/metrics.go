// Package monitoring exposes Prometheus metrics for the ordering service.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus collectors
type Metrics struct {
	OrdersSubmitted prometheus.Counter
	OrdersCompleted prometheus.Counter
	RevenueTotal    prometheus.Counter
	ReviewRequests  prometheus.Counter
	ReviewFallbacks prometheus.Counter
	CartItemsAdded  prometheus.Counter
	PendingOrders   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with the given registry
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		OrdersSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tablechef_orders_submitted_total",
			Help: "Orders submitted to the kitchen.",
		}),
		OrdersCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tablechef_orders_completed_total",
			Help: "Orders marked ready by the kitchen.",
		}),
		RevenueTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tablechef_revenue_total",
			Help: "Cumulative revenue of submitted orders.",
		}),
		ReviewRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tablechef_review_requests_total",
			Help: "Dietary review requests sent to the AI service.",
		}),
		ReviewFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tablechef_review_fallbacks_total",
			Help: "Dietary reviews that degraded to the local fallback.",
		}),
		CartItemsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tablechef_cart_items_added_total",
			Help: "Items added to carts.",
		}),
		PendingOrders: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tablechef_pending_orders",
			Help: "Orders currently waiting in the kitchen queue.",
		}),
	}

	reg.MustRegister(
		m.OrdersSubmitted,
		m.OrdersCompleted,
		m.RevenueTotal,
		m.ReviewRequests,
		m.ReviewFallbacks,
		m.CartItemsAdded,
		m.PendingOrders,
	)
	return m
}
