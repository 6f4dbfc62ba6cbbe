package models

// Service is a repair offering referenced by shops and appointments.
type Service struct {
	ID          string `bson:"id" json:"id"`
	ServiceName string `bson:"serviceName" json:"serviceName"`
}

// ShopService prices a Service at a MechanicShop.
type ShopService struct {
	ShopID    Ref     `bson:"shopId" json:"shopId"`
	ServiceID Ref     `bson:"serviceId" json:"serviceId"`
	Price     float64 `bson:"price" json:"price"`
}

// ShopCatalogue is the price list fetched for one shop. It carries the shop
// id the fetch was issued for so callers can discard results that no longer
// match their active selection.
type ShopCatalogue struct {
	ShopID string             `json:"shopId"`
	Prices map[string]float64 `json:"prices"`
}
