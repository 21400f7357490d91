package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/models"
)

type cartDocument struct {
	Key       string            `bson:"_id"`
	Items     []models.CartItem `bson:"items"`
	UpdatedAt time.Time         `bson:"updated_at"`
}

type orderDocument struct {
	Key   string       `bson:"owner_key"`
	Order models.Order `bson:"order"`
}

// MongoCartRepository keeps one document per cart in "carts" and inserts
// orders into "orders". Orders are never updated.
type MongoCartRepository struct {
	carts  *mongo.Collection
	orders *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{
		carts:  db.Collection("carts"),
		orders: db.Collection("orders"),
	}
}

func (r *MongoCartRepository) LoadItems(ctx context.Context, owner string) ([]models.CartItem, error) {
	var doc cartDocument
	err := r.carts.FindOne(ctx, bson.M{"_id": CartKey(owner)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	return models.CloneItems(doc.Items), nil
}

func (r *MongoCartRepository) SaveItems(ctx context.Context, owner string, items []models.CartItem) error {
	doc := cartDocument{
		Key:       CartKey(owner),
		Items:     models.CloneItems(items),
		UpdatedAt: time.Now(),
	}
	_, err := r.carts.ReplaceOne(ctx, bson.M{"_id": doc.Key}, doc, options.Replace().SetUpsert(true))
	return err
}

func (r *MongoCartRepository) AppendOrder(ctx context.Context, owner string, order models.Order) error {
	_, err := r.orders.InsertOne(ctx, orderDocument{Key: OrderLogKey(owner), Order: order})
	return err
}

func (r *MongoCartRepository) ListOrders(ctx context.Context, owner string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.orders.Find(ctx, bson.M{"owner_key": OrderLogKey(owner)}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	for cursor.Next(ctx) {
		var doc orderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		orders = append(orders, doc.Order)
	}
	return orders, cursor.Err()
}
