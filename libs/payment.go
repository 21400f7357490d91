package libs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"storefront/models"
)

// SimulatedGateway approves every draft after Delay. It stands in for a
// real provider in development.
type SimulatedGateway struct {
	Delay time.Duration
}

func (g SimulatedGateway) Submit(ctx context.Context, draft models.OrderDraft) (models.PaymentResult, error) {
	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.PaymentResult{}, ctx.Err()
		case <-timer.C:
		}
	}
	return models.PaymentResult{Success: true, Reference: "PAY-" + uuid.NewString()}, nil
}

type paymentInitRequest struct {
	Amount        int64          `json:"amount"`
	Currency      string         `json:"currency"`
	CustomerEmail string         `json:"customerEmail"`
	CustomerName  string         `json:"customerName"`
	CustomerPhone string         `json:"customerPhone"`
	Description   string         `json:"description"`
	PaymentMethod string         `json:"paymentMethod"`
	PublicKey     string         `json:"publicKey,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

type paymentInitResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	Message   string `json:"message"`
}

// HTTPGateway posts drafts to <BaseURL>/payments/initialize.
type HTTPGateway struct {
	BaseURL   string
	PublicKey string
	Client    *http.Client
}

func NewHTTPGateway(baseURL, publicKey string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		PublicKey: publicKey,
		Client:    &http.Client{Timeout: timeout},
	}
}

func (g *HTTPGateway) Submit(ctx context.Context, draft models.OrderDraft) (models.PaymentResult, error) {
	body, err := json.Marshal(paymentInitRequest{
		Amount:        draft.TotalAmount,
		Currency:      draft.Currency,
		CustomerEmail: draft.ShippingInfo.Email,
		CustomerName:  draft.ShippingInfo.Name,
		CustomerPhone: draft.ShippingInfo.Phone,
		Description:   draft.Description,
		PaymentMethod: string(draft.PaymentMethod),
		PublicKey:     g.PublicKey,
		Metadata: map[string]any{
			"items":         draft.Items,
			"shippingInfo":  draft.ShippingInfo,
			"deliveryNotes": draft.DeliveryNotes,
		},
	})
	if err != nil {
		return models.PaymentResult{}, fmt.Errorf("marshal payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/payments/initialize", bytes.NewReader(body))
	if err != nil {
		return models.PaymentResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return models.PaymentResult{}, fmt.Errorf("payment gateway: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return models.PaymentResult{}, fmt.Errorf("read payment response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.PaymentResult{}, fmt.Errorf("payment gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out paymentInitResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return models.PaymentResult{}, fmt.Errorf("decode payment response: %w", err)
	}
	return models.PaymentResult{Success: out.Success, Reference: out.Reference}, nil
}
