package models

import "time"

// Invoice is the billing document for an appointment.
type Invoice struct {
	InvoiceID     string    `bson:"invoiceId" json:"invoiceId"`
	UserID        Ref       `bson:"userId" json:"userId"`
	ShopID        Ref       `bson:"shopId" json:"shopId"`
	VehicleID     Ref       `bson:"vehicleId" json:"vehicleId"`
	AmountDue     float64   `bson:"amount_due" json:"amount_due"`
	Services      []Ref     `bson:"services" json:"services"`
	ServiceNames  []string  `bson:"serviceNames" json:"serviceNames"`
	TransactionID Ref       `bson:"transactionId" json:"transactionId"`
	AppointmentID Ref       `bson:"appointmentId" json:"appointmentId"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	PaymentStatus string    `bson:"payment_status" json:"payment_status"`
	Status        string    `bson:"status" json:"status"`
}
