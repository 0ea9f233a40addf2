package plkit

import (
	"errors"
	"testing"

	"github.com/eubc/plkit-go/pkg/plkit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOrder(t *testing.T) {
	table := responses(
		response(2, "Alice Smith", "alice@example.com",
			slot{item: "Unisex EcoLayer Hoodie", sizing: "m"},
			slot{},
			slot{item: "Men's EcoLayer Tee (Navy)", sizing: " xl ", sleeve: "AS", back: "ALICE"},
		),
	)

	o, err := ReadOrder(table, "  Alice Smith ", "")
	require.NoError(t, err)

	assert.Equal(t, "Alice Smith", o.Name)
	assert.Equal(t, "alice@example.com", o.Email)
	assert.Equal(t, 2, o.Row)
	assert.Equal(t, 2, o.ItemCount())

	first := o.Lines[0]
	assert.Equal(t, 1, first.Slot)
	require.NotNil(t, first.Sizing)
	assert.Equal(t, "M", *first.Sizing)
	assert.Nil(t, first.Sleeve)
	assert.Nil(t, first.Back)

	assert.False(t, o.Lines[1].Present())
	assert.Nil(t, o.Lines[1].Sizing)

	third := o.Lines[2]
	require.NotNil(t, third.Sizing)
	assert.Equal(t, "XL", *third.Sizing)
	assert.Equal(t, "AS", *third.Sleeve)
	assert.Equal(t, "ALICE", *third.Back)
}

func TestReadOrderNormalisesUnicode(t *testing.T) {
	// Combining diaeresis in the sheet, precomposed in the query.
	table := responses(response(2, "Zoe\u0308", "", slot{item: "Unisex EcoLayer Hoodie", sizing: "S"}))

	o, err := ReadOrder(table, "Zo\u00eb", "")
	require.NoError(t, err)
	assert.Equal(t, "Zo\u00eb", o.Name)
}

func TestReadOrderDuplicateNames(t *testing.T) {
	table := responses(
		response(2, "Sam Lee", "sam.a@example.com", slot{item: "Unisex EcoLayer Hoodie", sizing: "S"}),
		response(3, "Sam Lee", "sam.b@example.com", slot{item: "Unisex EcoLayer Hoodie", sizing: "L"}),
	)

	t.Run("no email", func(t *testing.T) {
		_, err := ReadOrder(table, "Sam Lee", "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("email selects row", func(t *testing.T) {
		o, err := ReadOrder(table, "Sam Lee", "SAM.B@example.com")
		require.NoError(t, err)
		assert.Equal(t, 3, o.Row)
		assert.Equal(t, "L", *o.Lines[0].Sizing)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := ReadOrder(table, "Sam Lee", "sam.c@example.com")
		var nf *NotFoundError
		require.True(t, errors.As(err, &nf))
		assert.Equal(t, "email", nf.Kind)
	})
}

func TestReadOrderDuplicateNameAndEmail(t *testing.T) {
	table := responses(
		response(2, "Sam Lee", "sam@example.com", slot{item: "Unisex EcoLayer Hoodie", sizing: "S"}),
		response(3, "Sam Lee", "sam@example.com", slot{item: "Unisex EcoLayer Hoodie", sizing: "L"}),
	)

	_, err := ReadOrder(table, "Sam Lee", "sam@example.com")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestReadOrderUnknownName(t *testing.T) {
	table := responses(response(2, "Alice Smith", "", slot{item: "Unisex EcoLayer Hoodie", sizing: "M"}))

	_, err := ReadOrder(table, "Bob Jones", "")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "name", nf.Kind)
	assert.Equal(t, "Bob Jones", nf.Key)
}

func TestReadOrderMissingColumn(t *testing.T) {
	table := responses(response(2, "Alice Smith", "", slot{item: "Unisex EcoLayer Hoodie", sizing: "M"}))
	missing := SleeveColumn("Third")
	var headers []string
	for _, h := range table.Headers {
		if h != missing {
			headers = append(headers, h)
		}
	}
	table.Headers = headers

	_, err := ReadOrder(table, "Alice Smith", "")
	var se *StructuralError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, missing, se.Column)
	assert.True(t, errors.Is(err, ErrStructural))

	_, err = ReadOrders(table)
	assert.True(t, errors.Is(err, ErrStructural))
}

func TestReadOrderInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		row  models.Row
	}{
		{
			name: "numeric sizing cell",
			row: models.Row{R: 2, C: map[string]interface{}{
				NameColumn:            "Alice Smith",
				ItemColumn("First"):   "Women's EcoLayer Tee (Navy)",
				SizingColumn("First"): int64(10),
			}},
		},
		{
			name: "digits-only sizing text",
			row: models.Row{R: 2, C: map[string]interface{}{
				NameColumn:            "Alice Smith",
				ItemColumn("First"):   "Women's EcoLayer Tee (Navy)",
				SizingColumn("First"): "12",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadOrder(responses(tt.row), "Alice Smith", "")
			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, SizingColumn("First"), ve.Field)
			assert.Equal(t, 2, ve.Row)
		})
	}
}

func TestReadOrdersNonStringName(t *testing.T) {
	table := responses(models.Row{R: 2, C: map[string]interface{}{NameColumn: int64(42)}})

	_, err := ReadOrders(table)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestReadOrders(t *testing.T) {
	table := responses(
		response(2, "Sam Lee", "sam.a@example.com", slot{item: "Unisex EcoLayer Hoodie", sizing: "S"}),
		models.Row{R: 3, C: map[string]interface{}{}},
		response(4, "Alice Smith", "", slot{item: "Unisex EcoLayer Hoodie", sizing: "M"}),
		response(5, "Sam Lee", "sam.b@example.com", slot{item: "Unisex EcoLayer Hoodie", sizing: "L"}),
	)

	orders, err := ReadOrders(table)
	require.NoError(t, err)
	require.Len(t, orders, 3)

	assert.Equal(t, 2, orders[0].Row)
	assert.Equal(t, 4, orders[1].Row)
	assert.Equal(t, 5, orders[2].Row)
	assert.Equal(t, "L", *orders[2].Lines[0].Sizing)
}

func TestNewOrder(t *testing.T) {
	five := make([]*string, models.SlotCount)
	five[0] = str("Unisex EcoLayer Hoodie")

	o, err := NewOrder("Alice", "a@example.com", five, five, make([]*string, 5), make([]*string, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, o.ItemCount())
	assert.Equal(t, 5, o.Lines[4].Slot)

	_, err = NewOrder("Alice", "", five, five[:4], five, five)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "sizings", ve.Field)
}
