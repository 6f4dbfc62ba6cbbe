package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"fixv/database"
	"fixv/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	services     *mongo.Collection
	shopServices *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	return &MongoCatalogRepo{
		services:     database.Collection(database.ServicesCollection),
		shopServices: database.Collection(database.ShopServicesCollection),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAllServices retrieves every repair offering.
func (r *MongoCatalogRepo) GetAllServices() ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.services.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}

// GetServiceByID retrieves one service. Returns nil, nil when no service
// matches.
func (r *MongoCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var service models.Service
	if err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &service, nil
}

// refFilter matches a stored reference field against a ref regardless of
// which historical encoding the row uses: canonical sub-document, bare id
// string, or path string with or without a leading slash.
func refFilter(field string, ref models.Ref) bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{field + ".id": ref.ID},
			bson.M{field: ref.ID},
			bson.M{field: ref.Collection + "/" + ref.ID},
			bson.M{field: "/" + ref.Collection + "/" + ref.ID},
		},
	}
}

// FindPrice looks up the price of a service at a shop via the shop_services
// join.
func (r *MongoCatalogRepo) FindPrice(serviceRef, shopRef models.Ref) (float64, bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"$and": bson.A{
			refFilter("serviceId", serviceRef),
			refFilter("shopId", shopRef),
		},
	}

	var row models.ShopService
	if err := r.shopServices.FindOne(ctx, filter).Decode(&row); err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to fetch shop service price: %w", err)
	}
	return row.Price, true, nil
}

// ListPricesByShop retrieves every priced service at a shop.
func (r *MongoCatalogRepo) ListPricesByShop(shopRef models.Ref) ([]models.ShopService, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.shopServices.Find(ctx, refFilter("shopId", shopRef))
	if err != nil {
		return nil, fmt.Errorf("failed to list shop services: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.ShopService
	for cursor.Next(ctx) {
		var row models.ShopService
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode shop service: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
