package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcomes recorded on catalog_searches_total.
const (
	SearchMatch   = "match"
	SearchEmpty   = "empty"
	SearchInvalid = "invalid"
)

// Metrics groups the service's Prometheus collectors.
type Metrics struct {
	searches       *prometheus.CounterVec
	searchResults  prometheus.Histogram
	inventoryItems prometheus.Gauge
	orders         *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
// A nil reg leaves them unregistered, which is what tests usually want.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Catalog searches by outcome.",
		}, []string{"result"}),
		searchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "catalog_search_results",
			Help:    "Number of items returned per search.",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		}),
		inventoryItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "catalog_inventory_items",
			Help: "Items held by the currently loaded inventory.",
		}),
		orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orders_total",
			Help: "Order submissions by status.",
		}, []string{"status"}),
	}
	if reg != nil {
		reg.MustRegister(m.searches, m.searchResults, m.inventoryItems, m.orders)
	}
	return m
}

// ObserveSearch records a search outcome and its result count.
func (m *Metrics) ObserveSearch(result string, count int) {
	if m == nil {
		return
	}
	m.searches.WithLabelValues(result).Inc()
	if result != SearchInvalid {
		m.searchResults.Observe(float64(count))
	}
}

// SetInventorySize records the size of a freshly loaded inventory.
func (m *Metrics) SetInventorySize(n int) {
	if m == nil {
		return
	}
	m.inventoryItems.Set(float64(n))
}

// ObserveOrder records an order submission status (e.g. "submitted", "rejected", "failed").
func (m *Metrics) ObserveOrder(status string) {
	if m == nil {
		return
	}
	m.orders.WithLabelValues(status).Inc()
}

// Handler exposes the gathered metrics in the Prometheus text format.
func Handler(g prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
