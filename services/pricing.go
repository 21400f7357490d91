package services

import (
	"fmt"

	"storefront/models"
)

// PricingPolicy turns a cart total into the amounts charged at checkout.
// The zero value charges exactly the cart total.
type PricingPolicy struct {
	Currency string
	// FreeShippingThreshold: carts strictly above it ship free.
	FreeShippingThreshold int64
	ShippingFee           int64
	// TaxBasisPoints is the tax rate in hundredths of a percent (750 = 7.5%).
	TaxBasisPoints int64
}

type Quote struct {
	Subtotal    int64
	ShippingFee int64
	Tax         int64
	Total       int64
}

func (p PricingPolicy) Quote(subtotal int64) Quote {
	q := Quote{Subtotal: subtotal}
	if p.ShippingFee > 0 && subtotal <= p.FreeShippingThreshold {
		q.ShippingFee = p.ShippingFee
	}
	if p.TaxBasisPoints > 0 {
		// rounded half up
		q.Tax = (subtotal*p.TaxBasisPoints + 5000) / 10000
	}
	q.Total = q.Subtotal + q.ShippingFee + q.Tax
	return q
}

func (p PricingPolicy) Draft(state models.CartState, req models.CheckoutRequest) models.OrderDraft {
	q := p.Quote(state.Total)
	return models.OrderDraft{
		Items:         models.CloneItems(state.Items),
		Subtotal:      q.Subtotal,
		ShippingFee:   q.ShippingFee,
		Tax:           q.Tax,
		TotalAmount:   q.Total,
		Currency:      p.Currency,
		Description:   fmt.Sprintf("Store purchase - %d items", state.ItemCount),
		ShippingInfo:  req.ShippingInfo,
		PaymentMethod: req.PaymentMethod,
		DeliveryNotes: req.DeliveryNotes,
	}
}
