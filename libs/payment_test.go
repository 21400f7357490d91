package libs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

func sampleDraft() models.OrderDraft {
	return models.OrderDraft{
		Items:         []models.CartItem{{ID: "a", Name: "Lamp", UnitPrice: 1000, Quantity: 2, MaxQuantity: 3}},
		Subtotal:      2000,
		ShippingFee:   2500,
		Tax:           150,
		TotalAmount:   4650,
		Currency:      "NGN",
		Description:   "Store purchase - 2 items",
		ShippingInfo:  models.ShippingInfo{Name: "Ada", Email: "ada@example.com", Phone: "0803"},
		PaymentMethod: models.PaymentMethodPaystack,
	}
}

func TestHTTPGatewaySubmit(t *testing.T) {
	var got paymentInitRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/initialize", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"reference":"REF-123"}`))
	}))
	defer srv.Close()

	gw := NewHTTPGateway(srv.URL+"/", "pk_test", time.Second)
	res, err := gw.Submit(context.Background(), sampleDraft())
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "REF-123", res.Reference)
	assert.Equal(t, int64(4650), got.Amount)
	assert.Equal(t, "ada@example.com", got.CustomerEmail)
	assert.Equal(t, "paystack", got.PaymentMethod)
	assert.Equal(t, "pk_test", got.PublicKey)
}

func TestHTTPGatewayDecline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"reference":"REF-9","message":"insufficient funds"}`))
	}))
	defer srv.Close()

	res, err := NewHTTPGateway(srv.URL, "", time.Second).Submit(context.Background(), sampleDraft())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "REF-9", res.Reference)
}

func TestHTTPGatewayServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPGateway(srv.URL, "", time.Second).Submit(context.Background(), sampleDraft())
	assert.ErrorContains(t, err, "502")
}

func TestSimulatedGateway(t *testing.T) {
	res, err := SimulatedGateway{}.Submit(context.Background(), sampleDraft())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Contains(t, res.Reference, "PAY-")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = SimulatedGateway{Delay: time.Minute}.Submit(ctx, sampleDraft())
	assert.ErrorIs(t, err, context.Canceled)
}
