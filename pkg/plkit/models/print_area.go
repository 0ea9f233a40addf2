package models

// PrintArea is the printed cell range of a report sheet. Bounds are 1-based
// and inclusive.
type PrintArea struct {
	R1 int `json:"r1"`
	C1 int `json:"c1"`
	R2 int `json:"r2"`
	C2 int `json:"c2"`
}

// Empty reports whether the area covers no cells.
func (a PrintArea) Empty() bool {
	return a.R2 < a.R1 || a.C2 < a.C1
}
