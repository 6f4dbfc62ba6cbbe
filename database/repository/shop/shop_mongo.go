package shopRepo

import (
	"context"
	"fmt"
	"time"

	"fixv/database"
	"fixv/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoShopRepo implements ShopRepository using MongoDB.
type MongoShopRepo struct {
	coll *mongo.Collection
}

// NewMongoShopRepo creates a new instance of ShopRepository using MongoDB.
func NewMongoShopRepo() ShopRepository {
	return &MongoShopRepo{coll: database.Collection(database.MechanicShopsCollection)}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetByID retrieves a shop by its unique ID. Returns nil, nil when no shop
// matches.
func (r *MongoShopRepo) GetByID(id string) (*models.MechanicShop, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByName retrieves a shop by its display name. Returns nil, nil when no
// shop matches.
func (r *MongoShopRepo) GetByName(name string) (*models.MechanicShop, error) {
	return r.findOne(bson.M{"name": name})
}

func (r *MongoShopRepo) findOne(filter bson.M) (*models.MechanicShop, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var shop models.MechanicShop
	if err := r.coll.FindOne(ctx, filter).Decode(&shop); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch shop: %w", err)
	}
	return &shop, nil
}

// GetAll retrieves all shops.
func (r *MongoShopRepo) GetAll() ([]models.MechanicShop, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve shops: %w", err)
	}
	defer cursor.Close(ctx)

	var shops []models.MechanicShop
	for cursor.Next(ctx) {
		var s models.MechanicShop
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode shop: %w", err)
		}
		shops = append(shops, s)
	}
	return shops, nil
}
