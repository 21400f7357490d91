package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront/models"
)

type PostgresCartRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCartRepository(db *pgxpool.Pool) *PostgresCartRepository {
	return &PostgresCartRepository{db: db}
}

func (r *PostgresCartRepository) LoadItems(ctx context.Context, owner string) ([]models.CartItem, error) {
	query := `SELECT items FROM cart_snapshots WHERE owner_key = $1`

	var raw []byte
	err := r.db.QueryRow(ctx, query, CartKey(owner)).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
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

func (r *PostgresCartRepository) SaveItems(ctx context.Context, owner string, items []models.CartItem) error {
	raw, err := json.Marshal(models.CloneItems(items))
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cart_snapshots (owner_key, items, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (owner_key) DO UPDATE SET items = EXCLUDED.items, updated_at = NOW()
	`
	_, err = r.db.Exec(ctx, query, CartKey(owner), raw)
	return err
}

func (r *PostgresCartRepository) AppendOrder(ctx context.Context, owner string, order models.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return err
	}

	query := `INSERT INTO order_log (owner_key, order_id, payload, created_at) VALUES ($1, $2, $3, $4)`
	_, err = r.db.Exec(ctx, query, OrderLogKey(owner), order.OrderID, raw, order.Timestamp)
	return err
}

func (r *PostgresCartRepository) ListOrders(ctx context.Context, owner string) ([]models.Order, error) {
	query := `SELECT payload FROM order_log WHERE owner_key = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, OrderLogKey(owner))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var order models.Order
		if err := json.Unmarshal(raw, &order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
