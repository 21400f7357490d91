package repositories

import (
	"context"

	"storefront/models"
)

// CartRepository is the storage backend behind the cart persistence adapter.
// Implementations return errors; swallowing them is the adapter's job.
// A missing cart or order log is not an error and yields an empty slice.
type CartRepository interface {
	LoadItems(ctx context.Context, owner string) ([]models.CartItem, error)
	SaveItems(ctx context.Context, owner string, items []models.CartItem) error
	AppendOrder(ctx context.Context, owner string, order models.Order) error
	ListOrders(ctx context.Context, owner string) ([]models.Order, error)
}

const (
	cartKeyPrefix  = "cart:"
	orderKeyPrefix = "orders:"
)

func CartKey(owner string) string {
	return cartKeyPrefix + owner
}

func OrderLogKey(owner string) string {
	return orderKeyPrefix + owner
}
