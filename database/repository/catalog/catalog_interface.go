package catalogRepo

import "fixv/models"

// CatalogRepository defines data access for the service catalogue: the
// services collection and the per-shop price join.
type CatalogRepository interface {
	// GetAllServices retrieves every repair offering.
	GetAllServices() ([]models.Service, error)
	// GetServiceByID retrieves one service; nil when missing.
	GetServiceByID(id string) (*models.Service, error)
	// FindPrice looks up the price of a service at a shop via the
	// shop_services join. The boolean reports whether a price was found.
	FindPrice(serviceRef, shopRef models.Ref) (float64, bool, error)
	// ListPricesByShop retrieves every priced service at a shop.
	ListPricesByShop(shopRef models.Ref) ([]models.ShopService, error)
}
