package parser

// findHeader locates the header row of a sheet: the first row holding data,
// starting at the leftmost data column. It returns -1 for an empty sheet.
func findHeader(rows [][]string) (headerRow, minCol int) {
	minRow, _, minCol, _ := findDataBounds(rows)
	if minRow < 0 {
		return -1, -1
	}
	return minRow, minCol
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
