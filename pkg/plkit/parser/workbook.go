// Package parser reads form responses and generated reports from xlsx workbooks.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eubc/plkit-go/pkg/plkit/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook opens the workbook at path and reads sheetName as a table.
// An empty sheetName selects the first sheet.
func ReadWorkbook(path, sheetName string) (models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Table{}, err
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return models.Table{}, fmt.Errorf("workbook has no sheets")
		}
		sheetName = sheets[0]
	}
	return ReadTable(f, sheetName)
}

// ReadTable reads a sheet as a header row followed by data rows. The header
// row is the first non-empty row; columns left of the data are ignored.
func ReadTable(f *excelize.File, sheetName string) (models.Table, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return models.Table{}, fmt.Errorf("sheet %q not found", sheetName)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Table{}, err
	}

	table := models.Table{Sheet: sheetName}
	headerRow, minCol := findHeader(rows)
	if headerRow < 0 {
		return table, nil
	}

	headers := rows[headerRow]
	for colIdx := minCol; colIdx < len(headers); colIdx++ {
		table.Headers = append(table.Headers, strings.TrimSpace(headers[colIdx]))
	}

	for rowIdx := headerRow + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		cellMap := make(map[string]interface{})

		for colIdx := minCol; colIdx < len(row); colIdx++ {
			cellValue := row[colIdx]
			if cellValue == "" {
				continue
			}
			h := colIdx - minCol
			if h >= len(table.Headers) || table.Headers[h] == "" {
				continue
			}
			cellMap[table.Headers[h]] = parseValue(cellValue)
		}

		table.Rows = append(table.Rows, models.Row{
			R: rowIdx + 1, // 1-based row index
			C: cellMap,
		})
	}

	return table, nil
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float, but not for words such as "Nan" or "Inf"
	if !strings.ContainsAny(s, "0123456789") {
		return s
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
