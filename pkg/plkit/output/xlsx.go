// Package output renders the reports as JSON, xlsx workbooks and SQLite tables.
package output

import (
	"fmt"
	"strconv"

	"github.com/eubc/plkit-go/pkg/plkit/models"
	"github.com/xuri/excelize/v2"
)

// priceFormat is the built-in "0.00" number format.
const priceFormat = 2

// ProductTable lays out the product report as rows of cells, header first.
// Women's products fill the dress size columns, all others the letter
// columns. The total and club rows follow the product rows.
func ProductTable(r *models.ProductReport) [][]interface{} {
	headers := models.ProductHeaders(r.Currency)
	width := len(headers)
	dressStart := 3 + len(models.Sizes)

	table := [][]interface{}{toCells(headers)}
	for _, p := range r.Rows {
		row := make([]interface{}, width)
		row[0] = p.DisplayName()
		row[1] = string(p.Colour)
		row[2] = p.Quantity()

		start := 3
		if p.Womens() {
			start = dressStart
		}
		for i, s := range models.Sizes {
			row[start+i] = p.Counts[s]
		}
		row[width-2] = p.UnitPrice.InexactFloat64()
		row[width-1] = p.TotalPrice().InexactFloat64()
		table = append(table, row)
	}

	total := make([]interface{}, width)
	total[2] = r.TotalQuantity
	total[width-2] = models.TotalLabel
	total[width-1] = r.TotalPrice.InexactFloat64()

	club := make([]interface{}, width)
	club[1] = models.ClubNameLabel
	club[2] = r.ClubName

	return append(table, total, club)
}

// PersonalisationTable lays out the personalisation report, header first.
func PersonalisationTable(r *models.PersonalisationReport) [][]interface{} {
	table := [][]interface{}{toCells(models.PersonalisationHeaders())}
	for _, p := range r.Rows {
		table = append(table, []interface{}{
			p.Product,
			sizeCell(p.Size),
			string(p.Colour),
			optional(p.Sleeve),
			optional(p.Back),
		})
	}
	return table
}

// WriteProductsXLSX writes the product report to a new workbook at path.
func WriteProductsXLSX(path string, r *models.ProductReport) error {
	width := len(models.ProductHeaders(r.Currency))
	return writeSheet(path, models.ProductSheet, ProductTable(r), width-1, width, "landscape")
}

// WritePersonalisationsXLSX writes the personalisation report to a new
// workbook at path.
func WritePersonalisationsXLSX(path string, r *models.PersonalisationReport) error {
	return writeSheet(path, models.PersonalisationSheet, PersonalisationTable(r), 0, 0, "portrait")
}

// writeSheet writes rows to a single-sheet workbook. Columns firstPrice to
// lastPrice (1-based, inclusive) get a two-decimal format; 0 disables it.
func writeSheet(path, sheet string, rows [][]interface{}, firstPrice, lastPrice int, orientation string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, 1, 1, header); err != nil {
		return err
	}
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if firstPrice > 0 && len(rows) > 1 {
		price, err := f.NewStyle(&excelize.Style{NumFmt: priceFormat})
		if err != nil {
			return err
		}
		topLeft, _ := excelize.CoordinatesToCellName(firstPrice, 2)
		bottomRight, _ := excelize.CoordinatesToCellName(lastPrice, len(rows))
		if err := f.SetCellStyle(sheet, topLeft, bottomRight, price); err != nil {
			return err
		}
	}

	area := models.PrintArea{R1: 1, C1: 1, R2: len(rows), C2: len(rows[0])}
	if err := setPrintLayout(f, sheet, area, orientation); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func toCells(headers []string) []interface{} {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}

// sizeCell writes dress sizes as numbers so they sort like the source sheet.
func sizeCell(s *string) interface{} {
	if s == nil {
		return nil
	}
	if n, err := strconv.Atoi(*s); err == nil {
		return n
	}
	return *s
}

func optional(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
