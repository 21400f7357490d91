package services

import (
	"context"
	"fmt"
	"sync"

	"storefront/models"
	"storefront/utils"
)

// CartStore owns the cart of a single owner. All transitions go through
// Dispatch, which applies them one at a time in call order and writes the
// item list through to persistence.
type CartStore struct {
	mu          sync.Mutex
	owner       string
	state       models.CartState
	persistence *Persistence
	log         *utils.Logger
	locked      bool
	// loaded is false while the persisted cart has not been read
	// successfully. Writes are held back until it has, so a failed read
	// never overwrites stored items.
	loaded bool
}

// NewCartStore loads the owner's persisted items. A storage failure yields
// an empty cart that retries the load on its next use.
func NewCartStore(ctx context.Context, owner string, persistence *Persistence, log *utils.Logger) *CartStore {
	s := &CartStore{
		owner:       owner,
		persistence: persistence,
		log:         log.With("owner", owner),
	}
	items, ok := persistence.Load(ctx, owner)
	s.state = Reduce(models.CartState{}, LoadCart{Items: items})
	s.loaded = ok
	return s
}

// Loaded reports whether the persisted cart has been read.
func (s *CartStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Reload retries a failed initial load. It is a no-op once the cart has
// been read.
func (s *CartStore) Reload(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadLocked(ctx)
}

// reloadLocked merges the stored items ahead of anything added while
// storage was unreachable; sanitize keeps the first of any duplicate id.
func (s *CartStore) reloadLocked(ctx context.Context) {
	if s.loaded || s.locked {
		return
	}
	stored, ok := s.persistence.Load(ctx, s.owner)
	if !ok {
		return
	}
	merged := append(models.CloneItems(stored), s.state.Items...)
	s.state = Reduce(s.state, LoadCart{Items: merged})
	s.loaded = true
	s.log.Info("cart reloaded from storage", "items", s.state.ItemCount)
	if len(stored) != len(s.state.Items) {
		s.persistence.Save(ctx, s.owner, s.state.Items)
	}
}

func (s *CartStore) Owner() string {
	return s.owner
}

// Dispatch applies action and returns the resulting snapshot. Item-changing
// actions fail with ErrCartLocked while a checkout submission holds the cart.
func (s *CartStore) Dispatch(ctx context.Context, action CartAction) (models.CartState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if action.ChangesItems() {
		s.reloadLocked(ctx)
	}
	return s.dispatchLocked(ctx, action)
}

func (s *CartStore) dispatchLocked(ctx context.Context, action CartAction) (models.CartState, error) {
	if s.locked && action.ChangesItems() {
		return s.state.Clone(), ErrCartLocked
	}

	s.state = Reduce(s.state, action)
	if action.ChangesItems() {
		s.log.Debug("cart updated", "action", fmt.Sprintf("%T", action), "items", s.state.ItemCount, "total", s.state.Total)
		if s.loaded {
			s.persistence.Save(ctx, s.owner, s.state.Items)
		}
	}
	return s.state.Clone(), nil
}

func (s *CartStore) AddItem(ctx context.Context, item models.CartItem, quantity int) (models.CartState, error) {
	if err := validateItem(item); err != nil {
		return s.State(), err
	}
	return s.Dispatch(ctx, AddItem{Item: item, Quantity: quantity})
}

func (s *CartStore) RemoveItem(ctx context.Context, id string) (models.CartState, error) {
	return s.Dispatch(ctx, RemoveItem{ID: id})
}

func (s *CartStore) UpdateQuantity(ctx context.Context, id string, quantity int) (models.CartState, error) {
	return s.Dispatch(ctx, UpdateQuantity{ID: id, Quantity: quantity})
}

func (s *CartStore) Clear(ctx context.Context) (models.CartState, error) {
	return s.Dispatch(ctx, ClearCart{})
}

func (s *CartStore) Toggle(ctx context.Context) models.CartState {
	state, _ := s.Dispatch(ctx, ToggleOpen{})
	return state
}

func (s *CartStore) SetOpen(ctx context.Context, open bool) models.CartState {
	state, _ := s.Dispatch(ctx, SetOpen{Open: open})
	return state
}

func (s *CartStore) State() models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// GetQuantity returns 0 for items not in the cart.
func (s *CartStore) GetQuantity(id string) int {
	item, ok := s.State().Find(id)
	if !ok {
		return 0
	}
	return item.Quantity
}

func (s *CartStore) Contains(id string) bool {
	_, ok := s.State().Find(id)
	return ok
}

// lock freezes the item list for a checkout submission and returns the
// snapshot being submitted.
func (s *CartStore) lock() models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = true
	return s.state.Clone()
}

func (s *CartStore) unlock() {
	s.mu.Lock()
	s.locked = false
	s.mu.Unlock()
}

// unlockAndClear releases the submission lock and empties the cart in one
// step, so no edit can land between the two.
func (s *CartStore) unlockAndClear(ctx context.Context) models.CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = false
	state, _ := s.dispatchLocked(ctx, ClearCart{})
	return state
}
