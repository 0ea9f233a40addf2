// Package models defines the data structures shared by the order pipeline.
package models

// Row represents a single data row of a sheet.
type Row struct {
	// R is the row index in the sheet (1-based).
	R int `json:"r"`
	// C maps header name to cell value. A missing key is an absent cell.
	// Values are string, int64 or float64.
	C map[string]interface{} `json:"c"`
}

// Value returns the cell under header and whether it is present.
func (r Row) Value(header string) (interface{}, bool) {
	v, ok := r.C[header]
	return v, ok
}

// Empty reports whether the row carries no cells at all.
func (r Row) Empty() bool {
	return len(r.C) == 0
}

// Table is a header row plus the data rows beneath it.
type Table struct {
	// Sheet is the name of the sheet the table was read from.
	Sheet string `json:"sheet,omitempty"`
	// Headers lists the header cells in column order.
	Headers []string `json:"headers"`
	// Rows contains the data rows in sheet order.
	Rows []Row `json:"rows,omitempty"`
}

// HasColumn reports whether header is one of the table's columns.
func (t Table) HasColumn(header string) bool {
	for _, h := range t.Headers {
		if h == header {
			return true
		}
	}
	return false
}
