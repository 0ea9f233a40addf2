package output

import (
	"fmt"

	"github.com/eubc/plkit-go/pkg/plkit/models"
	"github.com/xuri/excelize/v2"
)

// setPrintLayout limits printing to area, repeats the header row on every
// page and fits the columns to one page width.
func setPrintLayout(f *excelize.File, sheet string, area models.PrintArea, orientation string) error {
	if area.Empty() {
		return nil
	}
	topLeft, err := excelize.CoordinatesToCellName(area.C1, area.R1, true)
	if err != nil {
		return err
	}
	bottomRight, err := excelize.CoordinatesToCellName(area.C2, area.R2, true)
	if err != nil {
		return err
	}
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: fmt.Sprintf("'%s'!%s:%s", sheet, topLeft, bottomRight),
		Scope:    sheet,
	}); err != nil {
		return fmt.Errorf("print area: %w", err)
	}
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Titles",
		RefersTo: fmt.Sprintf("'%s'!$%d:$%d", sheet, area.R1, area.R1),
		Scope:    sheet,
	}); err != nil {
		return fmt.Errorf("print titles: %w", err)
	}

	fit := true
	if err := f.SetSheetProps(sheet, &excelize.SheetPropsOptions{FitToPage: &fit}); err != nil {
		return err
	}
	width, height := 1, 0
	return f.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		Orientation: &orientation,
		FitToWidth:  &width,
		FitToHeight: &height,
	})
}
