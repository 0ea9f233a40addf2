package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eubc/plkit-go/pkg/plkit/models"
	"github.com/shopspring/decimal"
)

// ReadProductReport reads a product report written by the output package.
// Product rows are the rows with a product name; the total and club rows
// fill the report totals.
func ReadProductReport(path string) (*models.ProductReport, error) {
	t, err := ReadWorkbook(path, models.ProductSheet)
	if err != nil {
		return nil, err
	}

	currency := reportCurrency(t.Headers)
	if currency == "" {
		return nil, fmt.Errorf("%s: no unit price column", path)
	}
	unitPriceCol := models.UnitPriceHeader(currency)
	totalPriceCol := models.TotalPriceHeader(currency)
	dressLabels := models.DressSizeLabels()

	report := &models.ProductReport{Currency: currency, TotalPrice: decimal.Zero}
	for _, row := range t.Rows {
		name := cellText(row, models.ProductNameHeader)
		if name == nil {
			switch {
			case isLabel(row, unitPriceCol, models.TotalLabel):
				if report.TotalQuantity, err = cellInt(row, models.TotalQuantityHeader); err != nil {
					return nil, err
				}
				if report.TotalPrice, err = cellDecimal(row, totalPriceCol); err != nil {
					return nil, err
				}
			case isLabel(row, models.ColourHeader, models.ClubNameLabel):
				if club := cellText(row, models.TotalQuantityHeader); club != nil {
					report.ClubName = *club
				}
			}
			continue
		}

		price, err := cellDecimal(row, unitPriceCol)
		if err != nil {
			return nil, err
		}
		product := models.NewProductRow(*name, price)
		if colour := cellText(row, models.ColourHeader); colour != nil {
			product.Colour = models.Colour(*colour)
		}
		for i, size := range models.Sizes {
			letter, err := cellInt(row, string(size))
			if err != nil {
				return nil, err
			}
			dress, err := cellInt(row, dressLabels[i])
			if err != nil {
				return nil, err
			}
			product.Add(size, letter+dress)
		}
		report.Rows = append(report.Rows, product)
	}
	return report, nil
}

// ReadPersonalisationReport reads a personalisation report written by the
// output package.
func ReadPersonalisationReport(path string) (*models.PersonalisationReport, error) {
	t, err := ReadWorkbook(path, models.PersonalisationSheet)
	if err != nil {
		return nil, err
	}

	report := &models.PersonalisationReport{}
	for _, row := range t.Rows {
		name := cellText(row, models.ProductNameHeader)
		if name == nil {
			continue
		}
		var colour models.Colour
		if c := cellText(row, models.ColourHeader); c != nil {
			colour = models.Colour(*c)
		}
		report.Rows = append(report.Rows, models.PersonalisationRow{
			Product: *name,
			Size:    cellText(row, models.SizeHeader),
			Colour:  colour,
			Sleeve:  cellText(row, models.SleeveHeader),
			Back:    cellText(row, models.BackHeader),
		})
	}
	return report, nil
}

// reportCurrency extracts the currency code from the unit price header.
func reportCurrency(headers []string) string {
	const prefix = "Unit Price ("
	for _, h := range headers {
		if strings.HasPrefix(h, prefix) && strings.HasSuffix(h, ")") {
			return strings.TrimSuffix(strings.TrimPrefix(h, prefix), ")")
		}
	}
	return ""
}

func isLabel(row models.Row, column, label string) bool {
	s := cellText(row, column)
	return s != nil && *s == label
}

func cellText(row models.Row, column string) *string {
	v, ok := row.Value(column)
	if !ok {
		return nil
	}
	var s string
	switch v := v.(type) {
	case string:
		s = strings.TrimSpace(v)
	case int64:
		s = strconv.FormatInt(v, 10)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}
	if s == "" {
		return nil
	}
	return &s
}

func cellInt(row models.Row, column string) (int, error) {
	v, ok := row.Value(column)
	if !ok {
		return 0, nil
	}
	switch v := v.(type) {
	case int64:
		return int(v), nil
	case float64:
		if v == float64(int64(v)) {
			return int(v), nil
		}
	}
	return 0, fmt.Errorf("row %d column %q: %v is not a count", row.R, column, v)
}

func cellDecimal(row models.Row, column string) (decimal.Decimal, error) {
	v, ok := row.Value(column)
	if !ok {
		return decimal.Zero, nil
	}
	switch v := v.(type) {
	case int64:
		return decimal.NewFromInt(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, fmt.Errorf("row %d column %q: %w", row.R, column, err)
		}
		return d, nil
	}
	return decimal.Zero, fmt.Errorf("row %d column %q: %v is not a price", row.R, column, v)
}
