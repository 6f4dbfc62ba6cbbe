package models

import "time"

// AppointmentStatus mirrors the stored {confirmed: bool} sub-document.
type AppointmentStatus struct {
	Confirmed bool `bson:"confirmed" json:"confirmed"`
}

// Appointment is a scheduled booking. It is created atomically together with
// its PaymentTransaction and Invoice; TransactionID links the three.
type Appointment struct {
	AppointmentID string            `bson:"appointmentId" json:"appointmentId"`
	UserID        Ref               `bson:"userId" json:"userId"`
	ShopID        Ref               `bson:"shopId" json:"shopId"`
	VehicleID     Ref               `bson:"vehicleId" json:"vehicleId"`
	Services      []Ref             `bson:"services" json:"services"`
	Date          string            `bson:"date" json:"date"`
	Time          string            `bson:"time" json:"time"`
	Status        AppointmentStatus `bson:"status" json:"status"`
	TransactionID Ref               `bson:"transactionId" json:"transactionId"`
	CreatedAt     time.Time         `bson:"createdAt" json:"createdAt"`
}

// AppointmentSummary is the denormalized listing row: every reference
// resolved to a display string.
type AppointmentSummary struct {
	AppointmentID  string   `json:"appointmentId"`
	ShopName       string   `json:"shopName"`
	Date           string   `json:"date"`
	Time           string   `json:"time"`
	Confirmed      bool     `json:"confirmed"`
	VehicleDetails string   `json:"vehicleDetails"`
	Services       []string `json:"services"`
	TransactionID  string   `json:"transactionId"`
}
