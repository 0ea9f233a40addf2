package models

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Size is a letter size label.
type Size string

const (
	SizeXS  Size = "XS"
	SizeS   Size = "S"
	SizeM   Size = "M"
	SizeL   Size = "L"
	SizeXL  Size = "XL"
	Size2XL Size = "2XL"
	Size3XL Size = "3XL"
	Size4XL Size = "4XL"
	Size5XL Size = "5XL"
)

// Sizes lists the size vocabulary in column order.
var Sizes = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, Size2XL, Size3XL, Size4XL, Size5XL}

// ParseSize returns the Size for s, which must already be upper-cased.
func ParseSize(s string) (Size, bool) {
	for _, size := range Sizes {
		if string(size) == s {
			return size, true
		}
	}
	return "", false
}

// DressSize returns the women's dress size that corresponds to a letter size.
// XS is 6, S is 8 and so on up to 22 for 5XL.
func DressSize(size Size) (int, bool) {
	for i, s := range Sizes {
		if s == size {
			return 6 + 2*i, true
		}
	}
	return 0, false
}

// DressSizeLabels lists the dress size column labels in column order.
func DressSizeLabels() []string {
	labels := make([]string, len(Sizes))
	for i, s := range Sizes {
		n, _ := DressSize(s)
		labels[i] = strconv.Itoa(n)
	}
	return labels
}

// IsWomens reports whether a product uses women's dress sizes.
func IsWomens(name string) bool {
	return strings.Contains(name, "Women's")
}

// SizeLabel returns the label to print for sizing on the named product.
// Women's products show the dress size; anything else, including an
// unrecognised sizing, is returned unchanged.
func SizeLabel(product, sizing string) string {
	if !IsWomens(product) {
		return sizing
	}
	if n, ok := DressSize(Size(sizing)); ok {
		return strconv.Itoa(n)
	}
	return sizing
}

// Colour is the garment colour.
type Colour string

const (
	ColourForest Colour = "Forest"
	ColourNavy   Colour = "Navy"
)

// Colours lists the colours that can appear as a tag in a product name.
var Colours = []Colour{ColourForest, ColourNavy}

// ColourOf derives the colour from a product name. Navy is the default.
func ColourOf(name string) Colour {
	if strings.Contains(name, string(ColourForest)) {
		return ColourForest
	}
	return ColourNavy
}

// Tag returns the parenthesised form used inside product names.
func (c Colour) Tag() string {
	return "(" + string(c) + ")"
}

// DisplayName strips the colour tags from a canonical product name.
func DisplayName(name string) string {
	for _, c := range Colours {
		name = strings.ReplaceAll(name, c.Tag(), "")
	}
	return strings.TrimSpace(name)
}

// ProductRow accumulates the size counts for one catalogue product.
type ProductRow struct {
	// Name is the canonical catalogue name.
	Name      string          `json:"name"`
	Colour    Colour          `json:"colour"`
	Counts    map[Size]int    `json:"counts"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// NewProductRow returns an empty row for a catalogue product.
func NewProductRow(name string, unitPrice decimal.Decimal) *ProductRow {
	counts := make(map[Size]int, len(Sizes))
	for _, s := range Sizes {
		counts[s] = 0
	}
	return &ProductRow{
		Name:      name,
		Colour:    ColourOf(name),
		Counts:    counts,
		UnitPrice: unitPrice,
	}
}

// Add counts n items of the given size.
func (p *ProductRow) Add(size Size, n int) {
	p.Counts[size] += n
}

// Quantity returns the total number of items over all sizes.
func (p *ProductRow) Quantity() int {
	n := 0
	for _, c := range p.Counts {
		n += c
	}
	return n
}

// TotalPrice returns the unit price times the quantity.
func (p *ProductRow) TotalPrice() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity())))
}

// DisplayName returns the product name without its colour tag.
func (p *ProductRow) DisplayName() string {
	return DisplayName(p.Name)
}

// Womens reports whether the row is shown in dress sizes.
func (p *ProductRow) Womens() bool {
	return IsWomens(p.DisplayName())
}

// SizeColumns returns the counts keyed by display label: dress sizes for
// women's products, letter sizes otherwise.
func (p *ProductRow) SizeColumns() map[string]int {
	cols := make(map[string]int, len(Sizes))
	for _, s := range Sizes {
		label := string(s)
		if p.Womens() {
			n, _ := DressSize(s)
			label = strconv.Itoa(n)
		}
		cols[label] = p.Counts[s]
	}
	return cols
}

// ProductReport is the bulk purchasing report.
type ProductReport struct {
	Rows          []*ProductRow   `json:"rows"`
	TotalQuantity int             `json:"total_quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	ClubName      string          `json:"club_name"`
	Currency      string          `json:"currency"`
}

// SizeTotal returns the sum of every size bucket over all product rows.
func (r *ProductReport) SizeTotal() int {
	n := 0
	for _, row := range r.Rows {
		n += row.Quantity()
	}
	return n
}

// PersonalisationRow is one personalised line for production.
type PersonalisationRow struct {
	Product string  `json:"product"`
	Size    *string `json:"size,omitempty"`
	Colour  Colour  `json:"colour"`
	Sleeve  *string `json:"sleeve,omitempty"`
	Back    *string `json:"back,omitempty"`
}

// PersonalisationReport lists every personalised line.
type PersonalisationReport struct {
	Rows []PersonalisationRow `json:"rows"`
}

// BackCount returns the number of rows with a back name.
func (r *PersonalisationReport) BackCount() int {
	n := 0
	for _, row := range r.Rows {
		if row.Back != nil {
			n++
		}
	}
	return n
}

// SleeveCount returns the number of rows with sleeve initials.
func (r *PersonalisationReport) SleeveCount() int {
	n := 0
	for _, row := range r.Rows {
		if row.Sleeve != nil {
			n++
		}
	}
	return n
}
