package bookingRepo

import (
	"context"
	"time"

	"fixv/models"
)

// BookingRepository is the data-access contract for the three collections a
// booking writes: appointments, invoices and payment_transactions.
type BookingRepository interface {
	// BookAppointment commits one BookingSet atomically: all three documents
	// or none. The returned reads carry the denormalized display fields
	// captured inside the transaction.
	BookAppointment(ctx context.Context, set *models.BookingSet) (*models.BookingReads, error)

	// GetAppointment retrieves an appointment; nil when missing.
	GetAppointment(id string) (*models.Appointment, error)
	// ListAppointmentsByUser retrieves a user's appointments, trying the
	// canonical reference encoding first and the legacy encodings after.
	ListAppointmentsByUser(userID string) ([]models.Appointment, error)
	// UpdateAppointmentSchedule changes the date and time of an appointment.
	UpdateAppointmentSchedule(id, date, timeOfDay string) error
	// DeleteAppointment removes an appointment document.
	DeleteAppointment(id string) error

	// GetInvoice retrieves an invoice; nil when missing.
	GetInvoice(id string) (*models.Invoice, error)
	// GetTransaction retrieves a payment transaction; nil when missing.
	GetTransaction(id string) (*models.PaymentTransaction, error)
	// SetTransactionStatus updates a transaction's payment_status.
	SetTransactionStatus(id, status string) error

	// VoidOrphanedTransactions voids pending transactions created before the
	// cutoff whose appointment no longer exists, returning how many were
	// voided.
	VoidOrphanedTransactions(ctx context.Context, olderThan time.Time) (int, error)
}
