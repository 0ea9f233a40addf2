package plkit

import (
	"path/filepath"
	"testing"

	"github.com/eubc/plkit-go/pkg/plkit/models"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// slot is one kit item answer; empty fields are left blank.
type slot struct {
	item, sizing, sleeve, back string
}

// response builds a data row of the response sheet.
func response(r int, name, email string, slots ...slot) models.Row {
	c := map[string]interface{}{}
	if name != "" {
		c[NameColumn] = name
	}
	if email != "" {
		c[EmailColumn] = email
	}
	for i, s := range slots {
		ord := models.Ordinals[i]
		set := func(col, v string) {
			if v != "" {
				c[col] = v
			}
		}
		set(ItemColumn(ord), s.item)
		set(SizingColumn(ord), s.sizing)
		set(SleeveColumn(ord), s.sleeve)
		set(BackColumn(ord), s.back)
	}
	return models.Row{R: r, C: c}
}

func responses(rows ...models.Row) models.Table {
	return models.Table{Sheet: "Form responses 1", Headers: RequiredColumns(), Rows: rows}
}

// writeResponses saves a table as a response workbook and returns its path.
func writeResponses(t *testing.T, table models.Table) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range table.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	for _, row := range table.Rows {
		for i, h := range table.Headers {
			v, ok := row.C[h]
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, row.R)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), "responses.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func str(s string) *string { return &s }
