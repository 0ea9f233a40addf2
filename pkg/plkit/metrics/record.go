package metrics

import (
	"time"

	"github.com/eubc/plkit-go/pkg/plkit"
)

// Observe records a completed run.
func (r *Registry) Observe(res *plkit.Result) {
	r.Orders.Add(float64(res.Stats.Orders))
	r.LineItems.Add(float64(res.Stats.LineItems))
	r.Personalisations.WithLabelValues("back").Add(float64(res.Stats.BackNames))
	r.Personalisations.WithLabelValues("sleeve").Add(float64(res.Stats.SleeveInitials))
	r.DroppedSizings.Add(float64(res.Stats.DroppedSizings))
	for _, p := range res.Products.Rows {
		r.ProductQuantity.WithLabelValues(p.Name).Set(float64(p.Quantity()))
	}
	r.OrderValue.Set(res.Products.TotalPrice.InexactFloat64())
	r.LastRunSuccess.Set(1)
	r.LastRunTimestamp.Set(float64(time.Now().Unix()))
}

// Failed records a run that aborted.
func (r *Registry) Failed() {
	r.LastRunSuccess.Set(0)
	r.LastRunTimestamp.Set(float64(time.Now().Unix()))
}
