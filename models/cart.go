package models

type CartItem struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	UnitPrice   int64  `json:"price" bson:"price"`
	Quantity    int    `json:"quantity" bson:"quantity"`
	Image       string `json:"image" bson:"image"`
	Vendor      string `json:"vendor" bson:"vendor"`
	Category    string `json:"category" bson:"category"`
	MaxQuantity int    `json:"maxQuantity" bson:"max_quantity"`
}

// LineTotal is the unit price times quantity, in minor currency units.
func (i CartItem) LineTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// CartState is an immutable snapshot of a cart. Total and ItemCount are
// derived from Items and only ever written by the reducer.
type CartState struct {
	Items     []CartItem `json:"items"`
	IsOpen    bool       `json:"isOpen"`
	Total     int64      `json:"total"`
	ItemCount int        `json:"itemCount"`
}

func (s CartState) Find(id string) (CartItem, bool) {
	for _, item := range s.Items {
		if item.ID == id {
			return item, true
		}
	}
	return CartItem{}, false
}

func (s CartState) IsEmpty() bool {
	return len(s.Items) == 0
}

func (s CartState) Clone() CartState {
	out := s
	out.Items = CloneItems(s.Items)
	return out
}

// CloneItems returns a copy that never aliases the input. A nil or empty
// input yields an empty, non-nil slice so JSON encodes it as [].
func CloneItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	copy(out, items)
	return out
}
