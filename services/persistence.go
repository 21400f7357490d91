package services

import (
	"context"
	"time"

	"storefront/models"
	"storefront/repositories"
	"storefront/utils"
)

const defaultPersistenceTimeout = 3 * time.Second

// Persistence adapts a CartRepository to the cart engine's contract: loads
// never fail, writes are best effort. Every failure is logged as a
// PersistenceError and then dropped so the cart stays usable without storage.
type Persistence struct {
	repo    repositories.CartRepository
	log     *utils.Logger
	timeout time.Duration
}

func NewPersistence(repo repositories.CartRepository, log *utils.Logger) *Persistence {
	return &Persistence{
		repo:    repo,
		log:     log.With("component", "cart_persistence"),
		timeout: defaultPersistenceTimeout,
	}
}

func (p *Persistence) WithTimeout(d time.Duration) *Persistence {
	cp := *p
	cp.timeout = d
	return &cp
}

// Load returns the owner's persisted items. ok is false when storage failed
// and the empty slice is a fallback rather than the stored cart.
func (p *Persistence) Load(ctx context.Context, owner string) (items []models.CartItem, ok bool) {
	ctx, cancel := p.storageContext(ctx)
	defer cancel()

	items, err := p.repo.LoadItems(ctx, owner)
	if err != nil {
		p.report(&PersistenceError{Op: "load", Key: repositories.CartKey(owner), Err: err})
		return []models.CartItem{}, false
	}
	if items == nil {
		return []models.CartItem{}, true
	}
	return items, true
}

func (p *Persistence) Save(ctx context.Context, owner string, items []models.CartItem) {
	ctx, cancel := p.storageContext(ctx)
	defer cancel()

	if err := p.repo.SaveItems(ctx, owner, items); err != nil {
		p.report(&PersistenceError{Op: "save", Key: repositories.CartKey(owner), Err: err})
	}
}

func (p *Persistence) AppendOrder(ctx context.Context, owner string, order models.Order) {
	ctx, cancel := p.storageContext(ctx)
	defer cancel()

	if err := p.repo.AppendOrder(ctx, owner, order); err != nil {
		p.report(&PersistenceError{Op: "append_order", Key: repositories.OrderLogKey(owner), Err: err})
	}
}

// Orders reads the order log. Unlike the cart operations this one is a
// plain query for the order history view, so errors are returned.
func (p *Persistence) Orders(ctx context.Context, owner string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.repo.ListOrders(ctx, owner)
}

// storageContext detaches cart I/O from the caller's cancellation. The
// in-memory cart has already changed by the time a write runs, so a
// cancelled request must not leave storage behind it.
func (p *Persistence) storageContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
}

func (p *Persistence) report(err *PersistenceError) {
	p.log.Warn("cart storage unavailable", "op", err.Op, "key", err.Key, "error", err.Err)
}
