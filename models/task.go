package models

// BookingConfirmedPayload is the queue payload for the confirmation push
// sent after a booking commits.
type BookingConfirmedPayload struct {
	UserID    string `json:"userId"`
	InvoiceID string `json:"invoiceId"`
	ShopName  string `json:"shopName"`
	Date      string `json:"date"`
}
