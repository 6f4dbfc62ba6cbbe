package shop

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fixv/database"
	catalogRepo "fixv/database/repository/catalog"
	shopRepo "fixv/database/repository/shop"
	"fixv/models"
	"fixv/utils"

	"go.uber.org/zap"
)

// catalogueCacheTTL bounds how long a shop's price list is served from cache.
const catalogueCacheTTL = 10 * time.Minute

// ShopService exposes the mechanic shop directory and each shop's service
// catalogue.
type ShopService interface {
	ListShops() ([]models.MechanicShop, error)
	GetShopDetails(shopID string) (*ShopDetails, error)
	// GetCatalogue returns a shop's price list, tagged with the shop id it
	// was fetched for. Callers comparing the tag against their current
	// selection can safely discard a stale response.
	GetCatalogue(shopID string) (*models.ShopCatalogue, error)
	ListServices() ([]models.Service, error)
}

// ShopDetails is a shop with its offered services resolved to display names.
type ShopDetails struct {
	models.MechanicShop
	ServiceNames []string `json:"serviceNames"`
}

// ShopNotFoundError signals that no shop matches the given id.
type ShopNotFoundError struct {
	ShopID string
}

func (e ShopNotFoundError) Error() string {
	return "shop " + e.ShopID + " not found"
}

// DefaultShopService is the production implementation.
type DefaultShopService struct {
	Shops   shopRepo.ShopRepository
	Catalog catalogRepo.CatalogRepository
}

func (s *DefaultShopService) ListShops() ([]models.MechanicShop, error) {
	shops, err := s.Shops.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	return shops, nil
}

// GetShopDetails returns a shop with each offered service resolved to its
// display name. An unresolvable reference falls back to its own display
// string. Older clients addressed shops by display name, so a miss on the id
// retries as a name lookup.
func (s *DefaultShopService) GetShopDetails(shopID string) (*ShopDetails, error) {
	shopRec, err := s.Shops.GetByID(shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shop %s: %w", shopID, err)
	}
	if shopRec == nil {
		shopRec, err = s.Shops.GetByName(shopID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch shop %s: %w", shopID, err)
		}
	}
	if shopRec == nil {
		return nil, ShopNotFoundError{ShopID: shopID}
	}

	details := &ShopDetails{MechanicShop: *shopRec}
	for _, ref := range shopRec.ServicesOffered {
		details.ServiceNames = append(details.ServiceNames, s.serviceName(ref))
	}
	return details, nil
}

func (s *DefaultShopService) serviceName(ref models.Ref) string {
	if ref.Kind == models.RefEmbedded {
		return ref.Name
	}
	if ref.ID != "" {
		if svc, err := s.Catalog.GetServiceByID(ref.ID); err == nil && svc != nil {
			return svc.ServiceName
		}
	}
	return ref.Display()
}

// GetCatalogue returns the shop's price list keyed by service name. Results
// are cached briefly; the cache entry carries the shop id so a hit for the
// wrong shop is impossible.
func (s *DefaultShopService) GetCatalogue(shopID string) (*models.ShopCatalogue, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cacheKey := "shop:catalogue:" + shopID
	cacheClient := utils.GetCacheClient()

	if cached, err := cacheClient.Get(ctx, cacheKey).Result(); err == nil {
		var catalogue models.ShopCatalogue
		if err := json.Unmarshal([]byte(cached), &catalogue); err == nil && catalogue.ShopID == shopID {
			return &catalogue, nil
		}
	}

	shopRec, err := s.Shops.GetByID(shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shop %s: %w", shopID, err)
	}
	if shopRec == nil {
		return nil, ShopNotFoundError{ShopID: shopID}
	}

	rows, err := s.Catalog.ListPricesByShop(models.NewRef(database.MechanicShopsCollection, shopID))
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for shop %s: %w", shopID, err)
	}

	catalogue := &models.ShopCatalogue{
		ShopID: shopID,
		Prices: make(map[string]float64, len(rows)),
	}
	for _, row := range rows {
		catalogue.Prices[s.serviceName(row.ServiceID)] = row.Price
	}

	if data, err := json.Marshal(catalogue); err == nil {
		if err := cacheClient.Set(ctx, cacheKey, data, catalogueCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache shop catalogue",
				zap.String("shopId", shopID), zap.Error(err))
		}
	}
	return catalogue, nil
}

func (s *DefaultShopService) ListServices() ([]models.Service, error) {
	services, err := s.Catalog.GetAllServices()
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}
