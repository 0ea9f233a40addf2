package parser

import (
	"strings"

	"github.com/eubc/plkit-go/pkg/plkit/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ReadPrintArea returns the print area defined for sheetName, if any.
func ReadPrintArea(f *excelize.File, sheetName string) (models.PrintArea, bool) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheet, areas := parsePrintAreaReference(dn.RefersTo)
		if sheet == sheetName && len(areas) > 0 {
			return areas[0], true
		}
	}
	return models.PrintArea{}, false
}

// parsePrintAreaReference parses 'Sheet Name'!$A$1:$D$10 or
// Sheet1!$A$1:$D$10, possibly several comma-separated ranges.
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var areas []models.PrintArea
	var sheetName string
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		if sheetName == "" {
			sheetName = strings.Trim(part[:idx], "'")
		}
		if area, ok := parseRangeToArea(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}
	return sheetName, areas
}

// parseRangeToArea parses a range such as $A$1:$D$10.
func parseRangeToArea(rangeStr string) (models.PrintArea, bool) {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return models.PrintArea{}, false
	}
	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.PrintArea{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.PrintArea{}, false
	}
	return models.PrintArea{R1: r1, C1: c1, R2: r2, C2: c2}, true
}
