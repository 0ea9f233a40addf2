package output

import (
	"encoding/json"

	"github.com/eubc/plkit-go/pkg/plkit/models"
)

// ToJSON serializes v, indented when pretty is set.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// OrderToJSON serializes a resolved order.
func OrderToJSON(o *models.ResolvedOrder, pretty bool) ([]byte, error) {
	return ToJSON(o, pretty)
}
