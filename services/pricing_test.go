package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront/models"
)

func TestPricingQuote(t *testing.T) {
	policy := testPricing()

	tests := []struct {
		name     string
		subtotal int64
		want     Quote
	}{
		{"above threshold ships free", 60000, Quote{Subtotal: 60000, ShippingFee: 0, Tax: 4500, Total: 64500}},
		{"below threshold pays shipping", 10000, Quote{Subtotal: 10000, ShippingFee: 2500, Tax: 750, Total: 13250}},
		{"threshold itself pays shipping", 50000, Quote{Subtotal: 50000, ShippingFee: 2500, Tax: 3750, Total: 56250}},
		{"tax rounds half up", 20, Quote{Subtotal: 20, ShippingFee: 2500, Tax: 2, Total: 2522}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Quote(tt.subtotal))
		})
	}
}

func TestZeroPricingChargesCartTotal(t *testing.T) {
	q := PricingPolicy{}.Quote(12345)
	assert.Equal(t, Quote{Subtotal: 12345, Total: 12345}, q)
}

func TestPricingDraft(t *testing.T) {
	state := Reduce(models.CartState{}, AddItem{Item: testItem("a", 30000, 5), Quantity: 2})
	req := validRequest()
	req.DeliveryNotes = "Leave at the gate"

	draft := testPricing().Draft(state, req)

	assert.Equal(t, int64(60000), draft.Subtotal)
	assert.Equal(t, int64(64500), draft.TotalAmount)
	assert.Equal(t, "NGN", draft.Currency)
	assert.Equal(t, "Store purchase - 2 items", draft.Description)
	assert.Equal(t, req.ShippingInfo, draft.ShippingInfo)
	assert.Equal(t, "Leave at the gate", draft.DeliveryNotes)

	draft.Items[0].Quantity = 1
	assert.Equal(t, 2, state.Items[0].Quantity)
}
