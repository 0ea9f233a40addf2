package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eubc/plkit-go/pkg/plkit"
	"github.com/eubc/plkit-go/pkg/plkit/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	hoodie := models.NewProductRow("Unisex EcoLayer Hoodie", decimal.RequireFromString("38.40"))
	hoodie.Add(models.SizeM, 2)

	res := &plkit.Result{
		RunID: "run-1",
		Products: &models.ProductReport{
			Rows:          []*models.ProductRow{hoodie},
			TotalQuantity: 2,
			TotalPrice:    decimal.RequireFromString("76.80"),
		},
		Personalisations: &models.PersonalisationReport{},
		Stats: plkit.Stats{
			Orders:         2,
			LineItems:      3,
			BackNames:      1,
			SleeveInitials: 2,
			DroppedSizings: 1,
		},
	}

	r := NewRegistry()
	r.Observe(res)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.Orders))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.LineItems))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Personalisations.WithLabelValues("back")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.Personalisations.WithLabelValues("sleeve")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.ProductQuantity.WithLabelValues("Unisex EcoLayer Hoodie")))
	assert.Equal(t, 76.8, testutil.ToFloat64(r.OrderValue))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.LastRunSuccess))

	path := filepath.Join(t.TempDir(), "plkit.prom")
	require.NoError(t, r.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "plkit_orders_total 2")
	assert.Contains(t, string(data), `plkit_personalisations_total{placement="sleeve"} 2`)
	assert.Contains(t, string(data), "plkit_dropped_sizings_total 1")
}

func TestFailed(t *testing.T) {
	r := NewRegistry()
	r.Failed()

	assert.Equal(t, 0.0, testutil.ToFloat64(r.LastRunSuccess))
	assert.Positive(t, testutil.ToFloat64(r.LastRunTimestamp))
}
