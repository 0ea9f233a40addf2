package plkit

import (
	"regexp"
	"strings"

	"github.com/eubc/plkit-go/pkg/plkit/models"
)

var rePersonalisationSuffix = regexp.MustCompile(`\s*-\s*\d+\s+Personalisations?\s*$`)

// personalisationSuffix returns the product name suffix for n personalisations.
func personalisationSuffix(n int) string {
	switch n {
	case 0:
		return ""
	case 1:
		return " - 1 Personalisation"
	default:
		return " - 2 Personalisations"
	}
}

// ResolveLabel returns the canonical product name for a kit item label
// carrying n personalisations: base name, personalisation suffix, then the
// colour tag. A label that is already canonical resolves to itself.
func ResolveLabel(label string, n int) string {
	label = strings.ReplaceAll(label, "Green", string(models.ColourForest))

	var colour models.Colour
	for _, c := range models.Colours {
		if strings.Contains(label, c.Tag()) {
			label = strings.ReplaceAll(label, c.Tag(), "")
			colour = c
		}
	}

	label = strings.Join(strings.Fields(label), " ")
	label = rePersonalisationSuffix.ReplaceAllString(label, "")
	label += personalisationSuffix(n)
	if colour != "" {
		label += " " + colour.Tag()
	}
	return strings.TrimSpace(label)
}

// Resolve assigns a canonical product name to every ordered slot.
// The input order is left untouched.
func Resolve(o models.Order) models.ResolvedOrder {
	r := models.ResolvedOrder{Order: o}
	for i, line := range o.Lines {
		n, ok := line.Personalisations()
		if !ok {
			continue
		}
		product := ResolveLabel(*line.Item, n)
		r.Products[i] = &product
	}
	return r
}

// ResolveAll resolves every order, preserving order.
func ResolveAll(orders []models.Order) []models.ResolvedOrder {
	resolved := make([]models.ResolvedOrder, len(orders))
	for i, o := range orders {
		resolved[i] = Resolve(o)
	}
	return resolved
}
