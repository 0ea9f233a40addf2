package plkit

import (
	"errors"
	"testing"

	"github.com/eubc/plkit-go/pkg/plkit/catalogue"
	"github.com/eubc/plkit-go/pkg/plkit/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalogue() *catalogue.Catalogue {
	return catalogue.New("Badminton", "GBP",
		[]string{
			"Unisex EcoLayer Hoodie",
			"Unisex EcoLayer Hoodie - 1 Personalisation",
			"Women's EcoLayer Tee (Navy)",
		},
		map[string]decimal.Decimal{
			"Unisex EcoLayer Hoodie":                     decimal.RequireFromString("38.40"),
			"Unisex EcoLayer Hoodie - 1 Personalisation": decimal.RequireFromString("42.60"),
			"Women's EcoLayer Tee (Navy)":                decimal.RequireFromString("18.60"),
		})
}

func resolvedOrders(t *testing.T, table models.Table) []models.ResolvedOrder {
	t.Helper()
	orders, err := ReadOrders(table)
	require.NoError(t, err)
	return ResolveAll(orders)
}

func TestAggregateProducts(t *testing.T) {
	orders := resolvedOrders(t, responses(
		response(2, "Alice Smith", "",
			slot{item: "Unisex EcoLayer Hoodie", sizing: "m"},
			slot{item: "Unisex EcoLayer Hoodie", sizing: "M", sleeve: "AS"},
			slot{item: "Women's EcoLayer Tee (Navy)", sizing: "XS"},
		),
		response(3, "Bob Jones", "",
			slot{item: "Unisex EcoLayer Hoodie", sizing: "XXL"},
			slot{item: "Unisex EcoLayer Hoodie", sizing: "M"},
			slot{item: "Men's EcoLayer Tee (Navy)", sizing: "L"},
		),
	))

	report, stats, err := AggregateProducts(testCatalogue(), orders, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, report.Rows, 3)

	hoodie := report.Rows[0]
	assert.Equal(t, "Unisex EcoLayer Hoodie", hoodie.Name)
	assert.Equal(t, 2, hoodie.Counts[models.SizeM])
	assert.Equal(t, 2, hoodie.Quantity())
	assert.True(t, decimal.RequireFromString("76.80").Equal(hoodie.TotalPrice()))

	personalised := report.Rows[1]
	assert.Equal(t, 1, personalised.Counts[models.SizeM])

	tee := report.Rows[2]
	assert.Equal(t, models.ColourNavy, tee.Colour)
	assert.Equal(t, 1, tee.Counts[models.SizeXS])
	assert.Equal(t, 1, tee.SizeColumns()["6"])

	assert.Equal(t, 4, report.TotalQuantity)
	assert.True(t, decimal.RequireFromString("138.00").Equal(report.TotalPrice), report.TotalPrice.String())
	assert.Equal(t, "Badminton", report.ClubName)
	assert.Equal(t, "GBP", report.Currency)

	// XXL is not a size.
	assert.Equal(t, 1, stats.DroppedSizings)
}

func TestAggregateProductsTotals(t *testing.T) {
	orders := resolvedOrders(t, responses(
		response(2, "A", "", slot{item: "Unisex EcoLayer Hoodie", sizing: "S"}, slot{item: "Women's EcoLayer Tee (Navy)", sizing: "5XL"}),
		response(3, "B", "", slot{item: "Unisex EcoLayer Hoodie", sizing: "3XL"}),
	))

	report, _, err := AggregateProducts(testCatalogue(), orders, DefaultOptions())
	require.NoError(t, err)

	sum := 0
	total := decimal.Zero
	for _, row := range report.Rows {
		sum += row.Quantity()
		total = total.Add(row.TotalPrice())
	}
	assert.Equal(t, sum, report.TotalQuantity)
	assert.Equal(t, report.SizeTotal(), report.TotalQuantity)
	assert.True(t, total.Equal(report.TotalPrice))
}

func TestAggregateProductsMissingPrice(t *testing.T) {
	cat := catalogue.New("Badminton", "GBP", []string{"Unisex EcoLayer Hoodie"}, nil)

	_, _, err := AggregateProducts(cat, nil, DefaultOptions())
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "price", nf.Kind)
	assert.Equal(t, "Unisex EcoLayer Hoodie", nf.Key)
}

func TestAggregateProductsEmpty(t *testing.T) {
	report, stats, err := AggregateProducts(testCatalogue(), nil, Options{})
	require.NoError(t, err)
	assert.Len(t, report.Rows, 3)
	assert.Zero(t, report.TotalQuantity)
	assert.True(t, report.TotalPrice.IsZero())
	assert.Zero(t, stats.DroppedSizings)
}
