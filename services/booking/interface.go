package booking

import (
	"context"

	bookingRepo "fixv/database/repository/booking"
	catalogRepo "fixv/database/repository/catalog"
	shopRepo "fixv/database/repository/shop"
	userRepo "fixv/database/repository/user"
	vehicleRepo "fixv/database/repository/vehicle"
	"fixv/models"
	"fixv/services/notification"
)

// BookingService defines the appointment booking workflow: the atomic
// book-and-pay step, appointment management, and the invoice read model.
type BookingService interface {
	// BookAppointment resolves the requested services, records the payment
	// and commits the transaction, appointment and invoice atomically,
	// returning the invoice read model for immediate display.
	BookAppointment(ctx context.Context, userID string, req models.AppointmentRequest) (*models.InvoiceDetails, error)

	// ListUserAppointments returns a user's appointments with every
	// reference resolved to a display string.
	ListUserAppointments(userID string) ([]models.AppointmentSummary, error)
	// GetAppointmentDetails returns one resolved appointment.
	GetAppointmentDetails(id string) (*models.AppointmentSummary, error)
	// RescheduleAppointment changes an appointment's date and time.
	RescheduleAppointment(id, date, timeOfDay string) error
	// CancelAppointment deletes the appointment and voids its payment
	// transaction. The two writes are not atomic; when the void fails the
	// returned error reports the transaction left pending.
	CancelAppointment(id string) error

	// GetInvoiceDetails assembles the invoice read model by joining the
	// invoice against its user, shop, vehicle, appointment and the shop's
	// service prices.
	GetInvoiceDetails(invoiceID string) (*models.InvoiceDetails, error)
}

// TaskDispatcher enqueues background work that must not block the booking
// request.
type TaskDispatcher interface {
	DispatchBookingConfirmed(payload models.BookingConfirmedPayload) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings        bookingRepo.BookingRepository
	Users           userRepo.UserRepository
	Shops           shopRepo.ShopRepository
	Vehicles        vehicleRepo.VehicleRepository
	Catalog         catalogRepo.CatalogRepository
	Gateway         PaymentGateway
	NotificationSvc notification.NotificationService
	Dispatcher      TaskDispatcher
}
