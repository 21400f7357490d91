package services

import (
	"context"
	"sync"
	"time"

	"storefront/models"
	"storefront/utils"
)

// Session pairs one owner's cart with its checkout.
type Session struct {
	Cart     *CartStore
	Checkout *CheckoutService

	lastUsed time.Time
}

// Sessions hands out one Session per owner, creating and loading it on
// first use.
type Sessions struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	persistence *Persistence
	checkout    CheckoutConfig
	log         *utils.Logger
	now         func() time.Time
}

func NewSessions(persistence *Persistence, checkout CheckoutConfig, log *utils.Logger) *Sessions {
	now := checkout.Now
	if now == nil {
		now = time.Now
	}
	return &Sessions{
		sessions:    make(map[string]*Session),
		persistence: persistence,
		checkout:    checkout,
		log:         log,
		now:         now,
	}
}

// Get returns the owner's session. The cart is loaded outside the registry
// lock so one slow owner does not hold up the others. A cart whose load
// failed is retried here on every call until storage answers.
func (r *Sessions) Get(ctx context.Context, owner string) *Session {
	if s := r.lookup(owner); s != nil {
		s.Cart.Reload(ctx)
		return s
	}

	cart := NewCartStore(ctx, owner, r.persistence, r.log)
	created := &Session{
		Cart:     cart,
		Checkout: NewCheckoutService(cart, r.persistence, r.checkout, r.log),
	}

	r.mu.Lock()
	if s, ok := r.sessions[owner]; ok {
		s.lastUsed = r.now()
		r.mu.Unlock()
		return s
	}
	created.lastUsed = r.now()
	r.sessions[owner] = created
	r.mu.Unlock()

	r.log.Debug("cart session opened", "owner", owner, "items", cart.State().ItemCount, "loaded", cart.Loaded())
	return created
}

func (r *Sessions) lookup(owner string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[owner]
	if !ok {
		return nil
	}
	s.lastUsed = r.now()
	return s
}

// EvictIdle drops sessions unused for longer than maxIdle. A session with a
// submission in flight is kept. Evicted carts are reloaded from storage on
// the owner's next request.
func (r *Sessions) EvictIdle(maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for owner, s := range r.sessions {
		if s.lastUsed.After(cutoff) {
			continue
		}
		if s.Checkout.Status().State == CheckoutSubmitting {
			continue
		}
		delete(r.sessions, owner)
		evicted++
	}
	if evicted > 0 {
		r.log.Debug("idle cart sessions evicted", "count", evicted, "remaining", len(r.sessions))
	}
	return evicted
}

// RunEviction calls EvictIdle every interval until ctx is done.
func (r *Sessions) RunEviction(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.EvictIdle(maxIdle)
		}
	}
}

func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *Sessions) Orders(ctx context.Context, owner string) ([]models.Order, error) {
	return r.persistence.Orders(ctx, owner)
}
