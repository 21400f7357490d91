package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

func newRedisRepository(t *testing.T) (*RedisCartRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisCartRepository(rdb), mr
}

func TestRedisCartRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRedisRepository(t)

	items, err := repo.LoadItems(ctx, "1")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	want := []models.CartItem{
		{ID: "a", Name: "Lamp", UnitPrice: 1500, Quantity: 2, MaxQuantity: 4, Vendor: "Zavolah"},
		{ID: "b", Name: "Vase", UnitPrice: 900, Quantity: 1, MaxQuantity: 1},
	}
	require.NoError(t, repo.SaveItems(ctx, "1", want))
	assert.True(t, mr.Exists(CartKey("1")))

	got, err := repo.LoadItems(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, repo.SaveItems(ctx, "1", want[1:]))
	got, err = repo.LoadItems(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, want[1:], got)

	other, err := repo.LoadItems(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestRedisCartRepositoryCorruptCart(t *testing.T) {
	repo, mr := newRedisRepository(t)
	require.NoError(t, mr.Set(CartKey("1"), "{not json"))

	_, err := repo.LoadItems(context.Background(), "1")
	assert.Error(t, err)
}

func TestRedisCartRepositoryOrderLog(t *testing.T) {
	ctx := context.Background()
	repo, mr := newRedisRepository(t)

	orders, err := repo.ListOrders(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, orders)

	placed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	for _, id := range []string{"ORD-1", "ORD-2", "ORD-3"} {
		require.NoError(t, repo.AppendOrder(ctx, "1", models.Order{
			OrderID:     id,
			Items:       []models.CartItem{{ID: "a", Name: "Lamp", UnitPrice: 1500, Quantity: 1, MaxQuantity: 4}},
			TotalAmount: 1500,
			Currency:    "NGN",
			Status:      models.OrderStatusConfirmed,
			Timestamp:   placed,
		}))
	}

	list, err := mr.List(OrderLogKey("1"))
	require.NoError(t, err)
	assert.Len(t, list, 3)

	orders, err = repo.ListOrders(ctx, "1")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	for i, id := range []string{"ORD-1", "ORD-2", "ORD-3"} {
		assert.Equal(t, id, orders[i].OrderID)
		assert.Equal(t, int64(1500), orders[i].TotalAmount)
		assert.True(t, placed.Equal(orders[i].Timestamp))
		require.Len(t, orders[i].Items, 1)
		assert.Equal(t, "a", orders[i].Items[0].ID)
	}

	others, err := repo.ListOrders(ctx, "2")
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestRedisCartRepositoryUnavailable(t *testing.T) {
	repo, mr := newRedisRepository(t)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := repo.LoadItems(ctx, "1")
	assert.Error(t, err)
	assert.Error(t, repo.SaveItems(ctx, "1", nil))
}
