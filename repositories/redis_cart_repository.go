package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"storefront/models"
)

// RedisCartRepository stores the cart as a JSON array under cart:<owner>
// and the order log as a Redis list under orders:<owner>, one JSON order
// per element. RPUSH keeps the log append-only.
type RedisCartRepository struct {
	rdb *redis.Client
}

func NewRedisCartRepository(rdb *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{rdb: rdb}
}

func (r *RedisCartRepository) LoadItems(ctx context.Context, owner string) ([]models.CartItem, error) {
	raw, err := r.rdb.Get(ctx, CartKey(owner)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}

	items := []models.CartItem{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RedisCartRepository) SaveItems(ctx context.Context, owner string, items []models.CartItem) error {
	raw, err := json.Marshal(models.CloneItems(items))
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, CartKey(owner), raw, 0).Err()
}

func (r *RedisCartRepository) AppendOrder(ctx context.Context, owner string, order models.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return r.rdb.RPush(ctx, OrderLogKey(owner), raw).Err()
}

func (r *RedisCartRepository) ListOrders(ctx context.Context, owner string) ([]models.Order, error) {
	records, err := r.rdb.LRange(ctx, OrderLogKey(owner), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(records))
	for _, raw := range records {
		var order models.Order
		if err := json.Unmarshal([]byte(raw), &order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
