package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusFailed    OrderStatus = "failed"
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusConfirmed || s == OrderStatusFailed
}

type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodBank     PaymentMethod = "bank"
	PaymentMethodDelivery PaymentMethod = "delivery"
	PaymentMethodPaystack PaymentMethod = "paystack"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodBank, PaymentMethodDelivery, PaymentMethodPaystack:
		return true
	}
	return false
}

type ShippingInfo struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
}

// OrderDraft is what the payment collaborator sees. It carries no order id;
// ids are only assigned once payment succeeds.
type OrderDraft struct {
	Items         []CartItem    `json:"items"`
	Subtotal      int64         `json:"subtotal"`
	ShippingFee   int64         `json:"shippingFee"`
	Tax           int64         `json:"tax"`
	TotalAmount   int64         `json:"totalAmount"`
	Currency      string        `json:"currency"`
	Description   string        `json:"description"`
	ShippingInfo  ShippingInfo  `json:"shippingInfo"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	DeliveryNotes string        `json:"deliveryNotes,omitempty"`
}

type PaymentResult struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference,omitempty"`
}

type Order struct {
	OrderID          string        `json:"orderId" bson:"order_id"`
	Items            []CartItem    `json:"items" bson:"items"`
	Subtotal         int64         `json:"subtotal" bson:"subtotal"`
	ShippingFee      int64         `json:"shippingFee" bson:"shipping_fee"`
	Tax              int64         `json:"tax" bson:"tax"`
	TotalAmount      int64         `json:"totalAmount" bson:"total_amount"`
	Currency         string        `json:"currency" bson:"currency"`
	ShippingInfo     ShippingInfo  `json:"shippingInfo" bson:"shipping_info"`
	PaymentMethod    PaymentMethod `json:"paymentMethod" bson:"payment_method"`
	PaymentReference string        `json:"paymentReference,omitempty" bson:"payment_reference,omitempty"`
	DeliveryNotes    string        `json:"deliveryNotes,omitempty" bson:"delivery_notes,omitempty"`
	Status           OrderStatus   `json:"status" bson:"status"`
	Timestamp        time.Time     `json:"timestamp" bson:"timestamp"`
}
