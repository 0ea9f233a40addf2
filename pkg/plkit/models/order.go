package models

// SlotCount is the number of item slots on the order form.
const SlotCount = 5

// Ordinals names the slots in form order.
var Ordinals = [SlotCount]string{"First", "Second", "Third", "Fourth", "Fifth"}

// LineItem is one slot of an order. A nil field is an absent answer.
type LineItem struct {
	// Slot is the 1-based slot position.
	Slot int `json:"slot"`
	// Item is the kit item label as chosen on the form.
	Item *string `json:"item,omitempty"`
	// Sizing is the upper-cased size answer.
	Sizing *string `json:"sizing,omitempty"`
	// Sleeve holds the sleeve initials.
	Sleeve *string `json:"sleeve,omitempty"`
	// Back holds the name printed on the back.
	Back *string `json:"back,omitempty"`
}

// Present reports whether an item was ordered in this slot.
func (l LineItem) Present() bool {
	return l.Item != nil
}

// Personalised reports whether the slot asks for sleeve or back printing.
func (l LineItem) Personalised() bool {
	return l.Sleeve != nil || l.Back != nil
}

// Personalisations returns the number of personalisations on the slot.
// The second result is false when no item was ordered.
func (l LineItem) Personalisations() (int, bool) {
	if !l.Present() {
		return 0, false
	}
	n := 0
	if l.Back != nil {
		n++
	}
	if l.Sleeve != nil {
		n++
	}
	return n, true
}

// Order is one person's submission.
type Order struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	// Row is the sheet row the order was read from.
	Row   int                 `json:"row,omitempty"`
	Lines [SlotCount]LineItem `json:"lines"`
}

// ItemCount returns the number of ordered slots.
func (o Order) ItemCount() int {
	n := 0
	for _, l := range o.Lines {
		if l.Present() {
			n++
		}
	}
	return n
}

// BackCount returns the number of slots with a back name.
func (o Order) BackCount() int {
	n := 0
	for _, l := range o.Lines {
		if l.Back != nil {
			n++
		}
	}
	return n
}

// SleeveCount returns the number of slots with sleeve initials.
func (o Order) SleeveCount() int {
	n := 0
	for _, l := range o.Lines {
		if l.Sleeve != nil {
			n++
		}
	}
	return n
}

// ResolvedOrder is an Order with a canonical product name per ordered slot.
type ResolvedOrder struct {
	Order
	// Products holds the canonical product per slot, nil where nothing was ordered.
	Products [SlotCount]*string `json:"products"`
}
