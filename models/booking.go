package models

// AppointmentRequest is the booking input assembled by the client: the
// selected shop, vehicle, schedule, services and the quoted prices.
type AppointmentRequest struct {
	ShopID        string             `json:"shopId" binding:"required"`
	VehicleID     string             `json:"vehicleId" binding:"required"`
	Date          string             `json:"date" binding:"required"`
	Time          string             `json:"time" binding:"required"`
	Services      []string           `json:"services" binding:"required"`
	ServicePrices map[string]float64 `json:"servicePrices"`
	TotalCost     float64            `json:"totalCost"`
	PaymentMethod string             `json:"paymentMethod" binding:"required"`
}

// BookingSet is the unit the store commits atomically: the three documents
// of one booking, already cross-referenced.
type BookingSet struct {
	Transaction PaymentTransaction
	Appointment Appointment
	Invoice     Invoice
}

// BookingReads are the denormalization reads taken inside the booking
// transaction. They feed display fields only and never gate the commit.
type BookingReads struct {
	UserName       string
	ShopName       string
	VehicleDetails string
}
