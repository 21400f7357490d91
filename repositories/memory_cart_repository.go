package repositories

import (
	"context"
	"encoding/json"
	"sync"

	"storefront/models"
)

// MemoryCartRepository keeps the same JSON records the durable backends
// store, so round trips go through the real encoding.
type MemoryCartRepository struct {
	mu     sync.RWMutex
	carts  map[string][]byte
	orders map[string][][]byte
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		carts:  make(map[string][]byte),
		orders: make(map[string][][]byte),
	}
}

func (r *MemoryCartRepository) LoadItems(ctx context.Context, owner string) ([]models.CartItem, error) {
	r.mu.RLock()
	raw, ok := r.carts[CartKey(owner)]
	r.mu.RUnlock()
	if !ok {
		return []models.CartItem{}, nil
	}

	items := []models.CartItem{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MemoryCartRepository) SaveItems(ctx context.Context, owner string, items []models.CartItem) error {
	raw, err := json.Marshal(models.CloneItems(items))
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.carts[CartKey(owner)] = raw
	r.mu.Unlock()
	return nil
}

func (r *MemoryCartRepository) AppendOrder(ctx context.Context, owner string, order models.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return err
	}
	key := OrderLogKey(owner)
	r.mu.Lock()
	r.orders[key] = append(r.orders[key], raw)
	r.mu.Unlock()
	return nil
}

func (r *MemoryCartRepository) ListOrders(ctx context.Context, owner string) ([]models.Order, error) {
	r.mu.RLock()
	records := r.orders[OrderLogKey(owner)]
	r.mu.RUnlock()

	orders := make([]models.Order, 0, len(records))
	for _, raw := range records {
		var order models.Order
		if err := json.Unmarshal(raw, &order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// PutRaw stores an arbitrary cart record, used to simulate corrupted data.
func (r *MemoryCartRepository) PutRaw(owner string, raw []byte) {
	r.mu.Lock()
	r.carts[CartKey(owner)] = raw
	r.mu.Unlock()
}
