package plkit

import (
	"log/slog"
	"strings"

	"github.com/eubc/plkit-go/pkg/plkit/models"
	"github.com/shopspring/decimal"
)

// AggregateStats describes what the aggregator saw beyond the report itself.
type AggregateStats struct {
	// DroppedSizings counts ordered slots whose sizing was not a known size.
	DroppedSizings int
}

// AggregateProducts folds every resolved order into one row per catalogue
// product, followed by the grand totals.
func AggregateProducts(cat Catalogue, orders []models.ResolvedOrder, opts Options) (*models.ProductReport, AggregateStats, error) {
	log := opts.logger()
	var stats AggregateStats

	report := &models.ProductReport{
		TotalPrice: decimal.Zero,
		ClubName:   cat.Club(),
		Currency:   cat.Currency(),
	}

	for _, name := range cat.Products() {
		price, ok := cat.UnitPrice(name)
		if !ok {
			return nil, stats, NewNotFoundError("price", name)
		}
		row := models.NewProductRow(name, price)
		for _, o := range orders {
			countOrder(row, o)
		}
		report.Rows = append(report.Rows, row)
		report.TotalQuantity += row.Quantity()
		report.TotalPrice = report.TotalPrice.Add(row.TotalPrice())
	}

	// Dropped sizings are reported once per slot, not once per catalogue pass.
	for _, o := range orders {
		for i, product := range o.Products {
			if product == nil {
				continue
			}
			sizing := o.Lines[i].Sizing
			if sizing != nil {
				if _, ok := models.ParseSize(strings.TrimSpace(*sizing)); ok {
					continue
				}
			}
			stats.DroppedSizings++
			log.Debug("dropping line with unrecognised sizing",
				slog.String("name", o.Name),
				slog.Int("slot", i+1),
				slog.String("product", *product),
				slog.Any("sizing", sizing))
		}
	}

	return report, stats, nil
}

// countOrder adds the slots of o that match the row's product.
func countOrder(row *models.ProductRow, o models.ResolvedOrder) {
	for i, product := range o.Products {
		if product == nil || strings.TrimSpace(*product) != row.Name {
			continue
		}
		sizing := o.Lines[i].Sizing
		if sizing == nil {
			continue
		}
		if size, ok := models.ParseSize(strings.TrimSpace(*sizing)); ok {
			row.Add(size, 1)
		}
	}
}
