package shopRepo

import "fixv/models"

// ShopRepository defines methods for mechanic shop data access.
type ShopRepository interface {
	// GetByID retrieves a shop by its unique ID; nil when missing.
	GetByID(id string) (*models.MechanicShop, error)
	// GetByName retrieves a shop by its display name; nil when missing.
	GetByName(name string) (*models.MechanicShop, error)
	// GetAll retrieves all shops.
	GetAll() ([]models.MechanicShop, error)
}
