// Package plkit aggregates kit order form responses into a product order
// and a personalisation list.
package plkit

import (
	"log/slog"

	"github.com/shopspring/decimal"
)

// Catalogue is the fixed list of orderable products and their prices.
type Catalogue interface {
	// Products returns the canonical product names in report order.
	Products() []string
	// UnitPrice returns the price of a canonical product name.
	UnitPrice(name string) (decimal.Decimal, bool)
	// Club returns the club name printed on the product report.
	Club() string
	// Currency returns the currency the prices are in.
	Currency() string
}

// Options configures a pipeline run.
type Options struct {
	// Logger receives run progress. If nil, slog.Default() is used.
	Logger *slog.Logger
	// Sheet names the worksheet holding the responses.
	// If empty, the first sheet is used.
	Sheet string
}

// DefaultOptions returns default pipeline options.
func DefaultOptions() Options {
	return Options{
		Logger: slog.Default(),
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
