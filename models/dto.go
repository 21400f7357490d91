package models

type AddItemRequest struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	UnitPrice   int64  `json:"price" binding:"min=0"`
	Quantity    int    `json:"quantity" binding:"min=0,max=10000"`
	Image       string `json:"image"`
	Vendor      string `json:"vendor"`
	Category    string `json:"category"`
	MaxQuantity int    `json:"maxQuantity" binding:"required,min=1,max=10000"`
}

func (r AddItemRequest) Item() CartItem {
	return CartItem{
		ID:          r.ID,
		Name:        r.Name,
		UnitPrice:   r.UnitPrice,
		Image:       r.Image,
		Vendor:      r.Vendor,
		Category:    r.Category,
		MaxQuantity: r.MaxQuantity,
	}
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,max=10000"`
}

type SetOpenRequest struct {
	Open *bool `json:"open" binding:"required"`
}

// CheckoutRequest has no binding tags; the checkout service reports every
// missing shipping field itself.
type CheckoutRequest struct {
	ShippingInfo  ShippingInfo  `json:"shippingInfo"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	DeliveryNotes string        `json:"deliveryNotes"`
}

type CheckoutStatusResponse struct {
	State     string `json:"state"`
	LastOrder *Order `json:"lastOrder,omitempty"`
	LastError string `json:"lastError,omitempty"`
}
