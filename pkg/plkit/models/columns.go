package models

// Sheet names of the generated workbooks.
const (
	ProductSheet         = "Products"
	PersonalisationSheet = "Personalisations"
)

// Product report headers.
const (
	ProductNameHeader   = "Product Name"
	ColourHeader        = "Colour"
	TotalQuantityHeader = "Total Quantity"
)

// Personalisation report headers.
const (
	SizeHeader   = "Size"
	SleeveHeader = "Initials (sleeve personalisation)"
	BackHeader   = "Name (back personalisation)"
)

// Labels written into the trailing product report rows.
const (
	TotalLabel    = "Total"
	ClubNameLabel = "Club Name"
)

// UnitPriceHeader returns the unit price header for a currency code.
func UnitPriceHeader(currency string) string {
	return "Unit Price (" + currency + ")"
}

// TotalPriceHeader returns the total price header for a currency code.
func TotalPriceHeader(currency string) string {
	return "Total Price (" + currency + ")"
}

// ProductHeaders returns the product report header row: name, colour,
// quantity, the letter sizes, the dress sizes, unit and total price.
func ProductHeaders(currency string) []string {
	headers := []string{ProductNameHeader, ColourHeader, TotalQuantityHeader}
	for _, s := range Sizes {
		headers = append(headers, string(s))
	}
	headers = append(headers, DressSizeLabels()...)
	return append(headers, UnitPriceHeader(currency), TotalPriceHeader(currency))
}

// PersonalisationHeaders returns the personalisation report header row.
func PersonalisationHeaders() []string {
	return []string{ProductNameHeader, SizeHeader, ColourHeader, SleeveHeader, BackHeader}
}
