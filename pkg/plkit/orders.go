package plkit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/eubc/plkit-go/pkg/plkit/models"
	"golang.org/x/text/unicode/norm"
)

// Column headers of the response form.
const (
	NameColumn  = "Name"
	EmailColumn = "Email"
)

var reNumericSizing = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// ItemColumn returns the kit item header for an ordinal such as "First".
func ItemColumn(ordinal string) string {
	return fmt.Sprintf("%s kit item", ordinal)
}

// SizingColumn returns the sizing header for an ordinal.
func SizingColumn(ordinal string) string {
	return fmt.Sprintf("Sizing for %s kit item (note that "+
		"for women's tee, XS=size 6, S=size 8, ... , 4XL=20)", strings.ToLower(ordinal))
}

// SleeveColumn returns the sleeve initials header for an ordinal.
func SleeveColumn(ordinal string) string {
	return fmt.Sprintf("%s item - personalisation for initials (optional, max two letters)", ordinal)
}

// BackColumn returns the back name header for an ordinal.
func BackColumn(ordinal string) string {
	return fmt.Sprintf("%s item - name personalisation for back (optional)", ordinal)
}

// RequiredColumns lists every header the response sheet must carry.
func RequiredColumns() []string {
	cols := []string{NameColumn, EmailColumn}
	for _, ord := range models.Ordinals {
		cols = append(cols, ItemColumn(ord), SizingColumn(ord), SleeveColumn(ord), BackColumn(ord))
	}
	return cols
}

// RequireColumns returns a StructuralError for the first missing header.
func RequireColumns(t models.Table) error {
	for _, col := range RequiredColumns() {
		if !t.HasColumn(col) {
			return NewStructuralError(col)
		}
	}
	return nil
}

// NewOrder builds an Order from per-field slot slices.
// Every slice must hold exactly one entry per slot.
func NewOrder(name, email string, items, sizings, backs, sleeves []*string) (models.Order, error) {
	fields := []struct {
		name   string
		values []*string
	}{
		{"items", items},
		{"sizings", sizings},
		{"back names", backs},
		{"sleeve names", sleeves},
	}
	for _, f := range fields {
		if len(f.values) != models.SlotCount {
			return models.Order{}, NewValidationError(f.name, 0,
				fmt.Sprintf("got %d slots, want %d", len(f.values), models.SlotCount))
		}
	}

	o := models.Order{Name: name, Email: email}
	for i := range o.Lines {
		o.Lines[i] = models.LineItem{
			Slot:   i + 1,
			Item:   items[i],
			Sizing: sizings[i],
			Sleeve: sleeves[i],
			Back:   backs[i],
		}
	}
	return o, nil
}

// ReadOrder returns the order placed by name. The email is only consulted
// when several rows carry the same name.
func ReadOrder(t models.Table, name, email string) (models.Order, error) {
	if err := RequireColumns(t); err != nil {
		return models.Order{}, err
	}

	name = clean(name)
	email = clean(email)

	var matches []models.Row
	for _, row := range t.Rows {
		if row.Empty() {
			continue
		}
		n, err := nameOf(row)
		if err != nil {
			return models.Order{}, err
		}
		if n == name {
			matches = append(matches, row)
		}
	}

	switch len(matches) {
	case 0:
		return models.Order{}, NewNotFoundError("name", name)
	case 1:
		return orderFromRow(matches[0])
	}

	if email == "" {
		return models.Order{}, NewNotFoundError("email for name", name)
	}

	var byEmail []models.Row
	for _, row := range matches {
		if e := text(row, EmailColumn); e != nil && strings.EqualFold(*e, email) {
			byEmail = append(byEmail, row)
		}
	}

	switch len(byEmail) {
	case 0:
		return models.Order{}, NewNotFoundError("email", email)
	case 1:
		return orderFromRow(byEmail[0])
	}
	return models.Order{}, NewValidationError(EmailColumn, byEmail[1].R,
		fmt.Sprintf("%d rows share name %q and email %q", len(byEmail), name, email))
}

// ReadOrders returns every order in the table, in sheet order.
func ReadOrders(t models.Table) ([]models.Order, error) {
	if err := RequireColumns(t); err != nil {
		return nil, err
	}

	var orders []models.Order
	for _, row := range t.Rows {
		if row.Empty() {
			continue
		}
		name, err := nameOf(row)
		if err != nil {
			return nil, err
		}
		var email string
		if e := text(row, EmailColumn); e != nil {
			email = *e
		}
		o, err := ReadOrder(t, name, email)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func orderFromRow(row models.Row) (models.Order, error) {
	name, err := nameOf(row)
	if err != nil {
		return models.Order{}, err
	}
	var email string
	if e := text(row, EmailColumn); e != nil {
		email = *e
	}

	var items, sizings, backs, sleeves []*string
	for _, ord := range models.Ordinals {
		sizing, err := sizingOf(row, SizingColumn(ord))
		if err != nil {
			return models.Order{}, err
		}
		items = append(items, text(row, ItemColumn(ord)))
		sizings = append(sizings, sizing)
		backs = append(backs, text(row, BackColumn(ord)))
		sleeves = append(sleeves, text(row, SleeveColumn(ord)))
	}

	o, err := NewOrder(name, email, items, sizings, backs, sleeves)
	if err != nil {
		return models.Order{}, err
	}
	o.Row = row.R
	return o, nil
}

func nameOf(row models.Row) (string, error) {
	v, ok := row.Value(NameColumn)
	if !ok {
		return "", NewValidationError(NameColumn, row.R, "missing name")
	}
	s, ok := v.(string)
	if !ok {
		return "", NewValidationError(NameColumn, row.R, fmt.Sprintf("non-string name %v", v))
	}
	s = clean(s)
	if s == "" {
		return "", NewValidationError(NameColumn, row.R, "missing name")
	}
	return s, nil
}

// sizingOf upper-cases the sizing answer. Dress sizes typed as numbers are
// rejected rather than mapped back to letters.
func sizingOf(row models.Row, column string) (*string, error) {
	v, ok := row.Value(column)
	if !ok {
		return nil, nil
	}
	switch v := v.(type) {
	case int64, float64:
		return nil, NewValidationError(column, row.R, fmt.Sprintf("numeric sizing %v", v))
	}
	s := text(row, column)
	if s == nil {
		return nil, nil
	}
	upper := strings.ToUpper(*s)
	if reNumericSizing.MatchString(upper) {
		return nil, NewValidationError(column, row.R, fmt.Sprintf("numeric sizing %q", upper))
	}
	return &upper, nil
}

// text returns the trimmed cell under column, or nil when the cell is absent
// or blank.
func text(row models.Row, column string) *string {
	v, ok := row.Value(column)
	if !ok || v == nil {
		return nil
	}
	var s string
	switch v := v.(type) {
	case string:
		s = v
	case int64:
		s = strconv.FormatInt(v, 10)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		s = fmt.Sprint(v)
	}
	s = clean(s)
	if s == "" {
		return nil
	}
	return &s
}

func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
