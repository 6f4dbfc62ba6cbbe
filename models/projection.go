package models

// CreatedAtDisplayLayout formats invoice creation dates like "Mon Jan 02",
// matching what the mobile client has always shown.
const CreatedAtDisplayLayout = "Mon Jan 02"

// InvoiceDetails is the flattened read model assembled for display, both
// immediately after payment and on later lookup by invoice id.
type InvoiceDetails struct {
	InvoiceID       string             `json:"invoiceId"`
	TotalAmount     float64            `json:"totalAmount"`
	UserName        string             `json:"userName"`
	PaymentStatus   string             `json:"paymentStatus"`
	AppointmentDate string             `json:"appointmentDate"`
	CreatedAt       string             `json:"createdAt"`
	ShopName        string             `json:"shopName"`
	Services        []string           `json:"services"`
	VehicleDetails  string             `json:"vehicleDetails"`
	ShopID          string             `json:"shopId"`
	ServicePrices   map[string]float64 `json:"servicePrices"`
}
