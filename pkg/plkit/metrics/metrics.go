// Package metrics records run counters for the node exporter textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the counters of one pipeline run.
type Registry struct {
	reg              *prometheus.Registry
	Orders           prometheus.Counter
	LineItems        prometheus.Counter
	Personalisations *prometheus.CounterVec
	DroppedSizings   prometheus.Counter
	ProductQuantity  *prometheus.GaugeVec
	OrderValue       prometheus.Gauge
	LastRunSuccess   prometheus.Gauge
	LastRunTimestamp prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	orders := prometheus.NewCounter(prometheus.CounterOpts{Name: "plkit_orders_total"})
	lineItems := prometheus.NewCounter(prometheus.CounterOpts{Name: "plkit_line_items_total"})
	personalisations := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "plkit_personalisations_total"},
		[]string{"placement"},
	)
	dropped := prometheus.NewCounter(prometheus.CounterOpts{Name: "plkit_dropped_sizings_total"})
	quantity := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "plkit_product_quantity"},
		[]string{"product"},
	)
	value := prometheus.NewGauge(prometheus.GaugeOpts{Name: "plkit_order_value"})
	success := prometheus.NewGauge(prometheus.GaugeOpts{Name: "plkit_last_run_success"})
	timestamp := prometheus.NewGauge(prometheus.GaugeOpts{Name: "plkit_last_run_timestamp_seconds"})

	r.MustRegister(orders, lineItems, personalisations, dropped, quantity, value, success, timestamp)
	return &Registry{
		reg:              r,
		Orders:           orders,
		LineItems:        lineItems,
		Personalisations: personalisations,
		DroppedSizings:   dropped,
		ProductQuantity:  quantity,
		OrderValue:       value,
		LastRunSuccess:   success,
		LastRunTimestamp: timestamp,
	}
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile writes the current values in the text exposition format.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
