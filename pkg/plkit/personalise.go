package plkit

import (
	"strings"

	"github.com/eubc/plkit-go/pkg/plkit/models"
)

// ExtractPersonalisations lists every personalised slot, orders in input
// order and slots in form order.
func ExtractPersonalisations(orders []models.ResolvedOrder) *models.PersonalisationReport {
	report := &models.PersonalisationReport{}
	for _, o := range orders {
		for i, product := range o.Products {
			line := o.Lines[i]
			if product == nil || !line.Personalised() {
				continue
			}
			name := strings.TrimSpace(*product)

			var size *string
			if line.Sizing != nil {
				label := models.SizeLabel(name, *line.Sizing)
				size = &label
			}

			report.Rows = append(report.Rows, models.PersonalisationRow{
				Product: name,
				Size:    size,
				Colour:  models.ColourOf(name),
				Sleeve:  line.Sleeve,
				Back:    line.Back,
			})
		}
	}
	return report
}
