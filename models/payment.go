package models

import "time"

// Payment statuses. A transaction starts pending and ends paid or void.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusVoid    = "Void"
)

// Payment methods accepted at booking time.
const (
	PaymentMethodCOD  = "cod"
	PaymentMethodCard = "card"
)

// PaymentTransaction records a payment for one booking.
type PaymentTransaction struct {
	TransactionID   string    `bson:"transactionId" json:"transactionId"`
	TotalPrice      float64   `bson:"totalPrice" json:"totalPrice"`
	PaymentMethod   string    `bson:"paymentMethod" json:"paymentMethod"`
	ServiceTypes    []Ref     `bson:"serviceTypes" json:"serviceTypes"`
	UserID          Ref       `bson:"userId" json:"userId"`
	ShopID          Ref       `bson:"shopId" json:"shopId"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	PaymentStatus   string    `bson:"payment_status" json:"payment_status"`
	InvoiceID       Ref       `bson:"invoiceId" json:"invoiceId"`
	PaymentIntentID string    `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
}
