package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"storefront/models"
	"storefront/repositories"
	"storefront/utils"
)

var errStorageDown = errors.New("storage down")

// failingRepository fails every call.
type failingRepository struct{}

func (failingRepository) LoadItems(context.Context, string) ([]models.CartItem, error) {
	return nil, errStorageDown
}

func (failingRepository) SaveItems(context.Context, string, []models.CartItem) error {
	return errStorageDown
}

func (failingRepository) AppendOrder(context.Context, string, models.Order) error {
	return errStorageDown
}

func (failingRepository) ListOrders(context.Context, string) ([]models.Order, error) {
	return nil, errStorageDown
}

// countingRepository wraps the memory backend and counts writes.
type countingRepository struct {
	*repositories.MemoryCartRepository
	saves atomic.Int32
}

func (r *countingRepository) SaveItems(ctx context.Context, owner string, items []models.CartItem) error {
	r.saves.Add(1)
	return r.MemoryCartRepository.SaveItems(ctx, owner, items)
}

type stubGateway struct {
	result models.PaymentResult
	err    error
	calls  atomic.Int32
	last   models.OrderDraft
	mu     sync.Mutex
}

func (g *stubGateway) Submit(ctx context.Context, draft models.OrderDraft) (models.PaymentResult, error) {
	g.calls.Add(1)
	g.mu.Lock()
	g.last = draft
	g.mu.Unlock()
	return g.result, g.err
}

func (g *stubGateway) lastDraft() models.OrderDraft {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}

func approvingGateway() *stubGateway {
	return &stubGateway{result: models.PaymentResult{Success: true, Reference: "PAY-1"}}
}

// blockingGateway holds every submission until release is closed.
type blockingGateway struct {
	started chan struct{}
	release chan struct{}
	calls   atomic.Int32
}

func newBlockingGateway() *blockingGateway {
	return &blockingGateway{started: make(chan struct{}, 1), release: make(chan struct{})}
}

func (g *blockingGateway) Submit(ctx context.Context, draft models.OrderDraft) (models.PaymentResult, error) {
	g.calls.Add(1)
	g.started <- struct{}{}
	<-g.release
	return models.PaymentResult{Success: true, Reference: "PAY-BLOCKED"}, nil
}

type recordingListener struct {
	name   string
	err    error
	mu     sync.Mutex
	orders []models.Order
}

func (l *recordingListener) Name() string { return l.name }

func (l *recordingListener) OrderPlaced(ctx context.Context, owner string, order models.Order) error {
	l.mu.Lock()
	l.orders = append(l.orders, order)
	l.mu.Unlock()
	return l.err
}

func (l *recordingListener) received() []models.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Order(nil), l.orders...)
}

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func testItem(id string, price int64, max int) models.CartItem {
	return models.CartItem{
		ID:          id,
		Name:        "Item " + id,
		UnitPrice:   price,
		Vendor:      "Zavolah",
		Category:    "decor",
		MaxQuantity: max,
	}
}

func validRequest() models.CheckoutRequest {
	return models.CheckoutRequest{
		ShippingInfo: models.ShippingInfo{
			Name:    "Ada Obi",
			Email:   "ada@example.com",
			Phone:   "08030000000",
			Address: "12 Marina Road",
			City:    "Lagos",
			State:   "Lagos",
		},
		PaymentMethod: models.PaymentMethodCard,
	}
}

func testPricing() PricingPolicy {
	return PricingPolicy{Currency: "NGN", FreeShippingThreshold: 50000, ShippingFee: 2500, TaxBasisPoints: 750}
}

type checkoutFixture struct {
	repo     *repositories.MemoryCartRepository
	cart     *CartStore
	checkout *CheckoutService
}

func newCheckoutFixture(t *testing.T, gateway PaymentGateway, listeners ...OrderListener) *checkoutFixture {
	t.Helper()
	log := utils.NewNop()
	repo := repositories.NewMemoryCartRepository()
	persistence := NewPersistence(repo, log)
	cart := NewCartStore(context.Background(), "user-1", persistence, log)
	checkout := NewCheckoutService(cart, persistence, CheckoutConfig{
		Gateway:   gateway,
		IDs:       NewSequenceGenerator(DefaultOrderIDPrefix),
		Pricing:   testPricing(),
		Listeners: listeners,
		Now:       func() time.Time { return fixedNow },
	}, log)
	return &checkoutFixture{repo: repo, cart: cart, checkout: checkout}
}

type panickingGateway struct{}

func (panickingGateway) Submit(context.Context, models.OrderDraft) (models.PaymentResult, error) {
	panic("gateway exploded")
}

// ctxRepository wraps the memory backend and fails any call made with a
// done context, the way network backends do.
type ctxRepository struct {
	*repositories.MemoryCartRepository
}

func (r ctxRepository) LoadItems(ctx context.Context, owner string) ([]models.CartItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.MemoryCartRepository.LoadItems(ctx, owner)
}

func (r ctxRepository) SaveItems(ctx context.Context, owner string, items []models.CartItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.MemoryCartRepository.SaveItems(ctx, owner, items)
}

// flakyRepository fails LoadItems until down is cleared and counts writes.
type flakyRepository struct {
	*repositories.MemoryCartRepository
	down  atomic.Bool
	saves atomic.Int32
}

func (r *flakyRepository) LoadItems(ctx context.Context, owner string) ([]models.CartItem, error) {
	if r.down.Load() {
		return nil, errStorageDown
	}
	return r.MemoryCartRepository.LoadItems(ctx, owner)
}

func (r *flakyRepository) SaveItems(ctx context.Context, owner string, items []models.CartItem) error {
	r.saves.Add(1)
	return r.MemoryCartRepository.SaveItems(ctx, owner, items)
}
