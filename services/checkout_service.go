package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"storefront/models"
	"storefront/utils"
)

type CheckoutState string

const (
	CheckoutIdle             CheckoutState = "idle"
	CheckoutAwaitingShipping CheckoutState = "awaiting_shipping_info"
	CheckoutSubmitting       CheckoutState = "submitting"
	CheckoutCompleted        CheckoutState = "completed"
	CheckoutFailed           CheckoutState = "failed"
)

func (s CheckoutState) String() string {
	return string(s)
}

// PaymentGateway authorizes a draft. A nil error with Success=false is a
// declined payment.
type PaymentGateway interface {
	Submit(ctx context.Context, draft models.OrderDraft) (models.PaymentResult, error)
}

// OrderListener is told about every completed order. Its errors are logged
// and never reach the buyer.
type OrderListener interface {
	Name() string
	OrderPlaced(ctx context.Context, owner string, order models.Order) error
}

type CheckoutConfig struct {
	Gateway   PaymentGateway
	IDs       OrderIDGenerator
	Pricing   PricingPolicy
	Listeners []OrderListener
	// Now defaults to time.Now.
	Now func() time.Time
	// SideEffectTimeout bounds the order log append and listener calls
	// that follow a successful payment.
	SideEffectTimeout time.Duration
}

type CheckoutStatus struct {
	State     CheckoutState
	LastOrder *models.Order
	LastError error
}

// CheckoutService drives one cart through checkout:
//
//	idle -> awaiting_shipping_info -> submitting -> completed | failed
//	failed -> awaiting_shipping_info (Retry)
//
// Only one submission can be in flight; the cart is locked against edits
// until it settles.
type CheckoutService struct {
	mu          sync.Mutex
	state       CheckoutState
	lastOrder   *models.Order
	lastErr     error
	cart        *CartStore
	persistence *Persistence
	cfg         CheckoutConfig
	log         *utils.Logger
}

func NewCheckoutService(cart *CartStore, persistence *Persistence, cfg CheckoutConfig, log *utils.Logger) *CheckoutService {
	if cfg.IDs == nil {
		cfg.IDs = UUIDGenerator{Prefix: DefaultOrderIDPrefix}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.SideEffectTimeout <= 0 {
		cfg.SideEffectTimeout = 10 * time.Second
	}
	return &CheckoutService{
		state:       CheckoutIdle,
		cart:        cart,
		persistence: persistence,
		cfg:         cfg,
		log:         log.With("component", "checkout", "owner", cart.Owner()),
	}
}

// BeginCheckout opens the shipping step. An empty cart fails with
// ErrEmptyCart and leaves the state unchanged.
func (s *CheckoutService) BeginCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == CheckoutSubmitting {
		return ErrSubmissionInFlight
	}
	if s.cart.State().IsEmpty() {
		return ErrEmptyCart
	}
	s.state = CheckoutAwaitingShipping
	s.lastErr = nil
	return nil
}

// Submit validates req, charges the cart through the gateway and, on
// success, records and returns the order and empties the cart. On payment
// failure it returns a *PaymentError and leaves the cart exactly as it was.
func (s *CheckoutService) Submit(ctx context.Context, req models.CheckoutRequest) (models.Order, error) {
	s.mu.Lock()
	switch s.state {
	case CheckoutSubmitting:
		s.mu.Unlock()
		return models.Order{}, ErrSubmissionInFlight
	case CheckoutAwaitingShipping:
	default:
		from := s.state
		s.mu.Unlock()
		return models.Order{}, &TransitionError{From: from, Action: "submit"}
	}

	req = normalizeRequest(req)
	if err := validateCheckout(req); err != nil {
		s.mu.Unlock()
		return models.Order{}, err
	}

	snapshot := s.cart.lock()
	if snapshot.IsEmpty() {
		s.cart.unlock()
		s.mu.Unlock()
		return models.Order{}, ErrEmptyCart
	}
	s.state = CheckoutSubmitting
	s.mu.Unlock()

	draft := s.cfg.Pricing.Draft(snapshot, req)
	result, err := s.pay(ctx, draft)
	if err == nil && !result.Success {
		err = &PaymentError{Method: string(req.PaymentMethod), Reference: result.Reference, Declined: true}
	}
	if err != nil {
		return models.Order{}, s.fail(req, err)
	}

	order := models.Order{
		OrderID:          s.cfg.IDs.NewOrderID(),
		Items:            models.CloneItems(draft.Items),
		Subtotal:         draft.Subtotal,
		ShippingFee:      draft.ShippingFee,
		Tax:              draft.Tax,
		TotalAmount:      draft.TotalAmount,
		Currency:         draft.Currency,
		ShippingInfo:     draft.ShippingInfo,
		PaymentMethod:    draft.PaymentMethod,
		PaymentReference: result.Reference,
		DeliveryNotes:    draft.DeliveryNotes,
		Status:           models.OrderStatusConfirmed,
		Timestamp:        s.cfg.Now().UTC(),
	}

	// The payment has been taken; a cancelled request must not stop the
	// order from being recorded.
	effectCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.SideEffectTimeout)
	defer cancel()

	s.persistence.AppendOrder(effectCtx, s.cart.Owner(), order)
	s.cart.unlockAndClear(effectCtx)

	s.mu.Lock()
	s.state = CheckoutCompleted
	s.lastOrder = &order
	s.lastErr = nil
	s.mu.Unlock()

	s.log.Info("order placed",
		"order_id", order.OrderID,
		"total", order.TotalAmount,
		"items", len(order.Items),
		"payment_method", order.PaymentMethod,
	)
	s.notify(effectCtx, order)

	return cloneOrder(order), nil
}

// pay calls the gateway, turning a panic into an error so the cart is
// unlocked through fail like any other payment failure.
func (s *CheckoutService) pay(ctx context.Context, draft models.OrderDraft) (result models.PaymentResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("payment gateway panic: %v", r)
		}
	}()
	return s.cfg.Gateway.Submit(ctx, draft)
}

func (s *CheckoutService) fail(req models.CheckoutRequest, err error) error {
	var payErr *PaymentError
	if !errors.As(err, &payErr) {
		payErr = &PaymentError{Method: string(req.PaymentMethod), Err: err}
	}

	s.mu.Lock()
	s.cart.unlock()
	s.state = CheckoutFailed
	s.lastErr = payErr
	s.mu.Unlock()

	s.log.Error("payment failed", "payment_method", req.PaymentMethod, "declined", payErr.Declined, "error", err)
	return payErr
}

// Retry returns a failed checkout to the shipping step. Nothing is resent
// until Submit is called again.
func (s *CheckoutService) Retry() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != CheckoutFailed {
		return &TransitionError{From: s.state, Action: "retry"}
	}
	s.state = CheckoutAwaitingShipping
	return nil
}

// Reset abandons checkout and returns to idle.
func (s *CheckoutService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == CheckoutSubmitting {
		return ErrSubmissionInFlight
	}
	s.state = CheckoutIdle
	s.lastErr = nil
	return nil
}

func (s *CheckoutService) Status() CheckoutStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := CheckoutStatus{State: s.state, LastError: s.lastErr}
	if s.lastOrder != nil {
		order := cloneOrder(*s.lastOrder)
		st.LastOrder = &order
	}
	return st
}

func (s *CheckoutService) notify(ctx context.Context, order models.Order) {
	for _, l := range s.cfg.Listeners {
		if err := l.OrderPlaced(ctx, s.cart.Owner(), cloneOrder(order)); err != nil {
			s.log.Warn("order listener failed", "listener", l.Name(), "order_id", order.OrderID, "error", err)
		}
	}
}

func normalizeRequest(req models.CheckoutRequest) models.CheckoutRequest {
	info := req.ShippingInfo
	info.Name = strings.TrimSpace(info.Name)
	info.Email = strings.TrimSpace(info.Email)
	info.Phone = strings.TrimSpace(info.Phone)
	info.Address = strings.TrimSpace(info.Address)
	info.City = strings.TrimSpace(info.City)
	info.State = strings.TrimSpace(info.State)
	req.ShippingInfo = info
	req.PaymentMethod = models.PaymentMethod(strings.ToLower(strings.TrimSpace(string(req.PaymentMethod))))
	req.DeliveryNotes = strings.TrimSpace(req.DeliveryNotes)
	return req
}

// validateCheckout expects a normalized request.
func validateCheckout(req models.CheckoutRequest) error {
	info := req.ShippingInfo
	fields := []struct {
		name  string
		value string
	}{
		{"name", info.Name},
		{"email", info.Email},
		{"phone", info.Phone},
		{"address", info.Address},
		{"city", info.City},
		{"state", info.State},
	}

	var errs ValidationErrors
	for _, f := range fields {
		if f.value == "" {
			errs = append(errs, &ValidationError{Field: f.name, Message: f.name + " " + ErrMsgFieldRequired})
		}
	}
	switch {
	case req.PaymentMethod == "":
		errs = append(errs, &ValidationError{Field: "paymentMethod", Message: "paymentMethod " + ErrMsgFieldRequired})
	case !req.PaymentMethod.Valid():
		errs = append(errs, &ValidationError{Field: "paymentMethod", Message: ErrMsgPaymentMethod})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func cloneOrder(o models.Order) models.Order {
	o.Items = models.CloneItems(o.Items)
	return o
}
