package booking

import (
	"context"
	"fmt"
	"time"

	"fixv/database"
	"fixv/models"
	"fixv/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookAppointment is the booking entry point. It validates the request,
// resolves every requested service name against the catalogue, optionally
// registers a card payment intent, and then commits the payment transaction,
// appointment and invoice as one atomic write. Nothing is persisted unless
// every earlier step succeeded.
func (s *DefaultBookingService) BookAppointment(ctx context.Context, userID string, req models.AppointmentRequest) (*models.InvoiceDetails, error) {
	if err := validateRequest(userID, req); err != nil {
		return nil, err
	}

	services, err := s.resolveServices(req.Services)
	if err != nil {
		return nil, err
	}

	amount := req.TotalCost
	if amount == 0 {
		for _, price := range req.ServicePrices {
			amount += price
		}
	}

	transactionID := uuid.New().String()
	appointmentID := uuid.New().String()
	invoiceID := uuid.New().String()
	now := time.Now()

	paymentIntentID := ""
	if req.PaymentMethod == models.PaymentMethodCard && s.Gateway != nil {
		paymentIntentID, err = s.Gateway.CreateIntent(ctx, amount, "usd", transactionID)
		if err != nil {
			return nil, fmt.Errorf("card payment setup failed: %w", err)
		}
	}

	userRef := models.NewRef(database.UsersCollection, userID)
	shopRef := models.NewRef(database.MechanicShopsCollection, req.ShopID)
	vehicleRef := models.NewRef(database.VehiclesCollection, req.VehicleID)

	serviceRefs := make([]models.Ref, len(services))
	serviceNames := make([]string, len(services))
	for i, svc := range services {
		serviceRefs[i] = models.NewRef(database.ServicesCollection, svc.ID)
		serviceNames[i] = svc.ServiceName
	}

	set := &models.BookingSet{
		Transaction: models.PaymentTransaction{
			TransactionID:   transactionID,
			TotalPrice:      amount,
			PaymentMethod:   req.PaymentMethod,
			ServiceTypes:    serviceRefs,
			UserID:          userRef,
			ShopID:          shopRef,
			CreatedAt:       now,
			PaymentStatus:   models.PaymentStatusPending,
			InvoiceID:       models.NewRef(database.InvoicesCollection, invoiceID),
			PaymentIntentID: paymentIntentID,
		},
		Appointment: models.Appointment{
			AppointmentID: appointmentID,
			UserID:        userRef,
			ShopID:        shopRef,
			VehicleID:     vehicleRef,
			Services:      serviceRefs,
			Date:          req.Date,
			Time:          req.Time,
			Status:        models.AppointmentStatus{Confirmed: true},
			TransactionID: models.NewRef(database.PaymentTransactionsCollection, transactionID),
			CreatedAt:     now,
		},
		Invoice: models.Invoice{
			InvoiceID:     invoiceID,
			UserID:        userRef,
			ShopID:        shopRef,
			VehicleID:     vehicleRef,
			AmountDue:     amount,
			Services:      serviceRefs,
			ServiceNames:  serviceNames,
			TransactionID: models.NewRef(database.PaymentTransactionsCollection, transactionID),
			AppointmentID: models.NewRef(database.AppointmentsCollection, appointmentID),
			CreatedAt:     now,
			PaymentStatus: models.PaymentStatusPending,
			Status:        "active",
		},
	}

	reads, err := s.Bookings.BookAppointment(ctx, set)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("booking committed",
		zap.String("transactionId", transactionID),
		zap.String("appointmentId", appointmentID),
		zap.String("invoiceId", invoiceID),
		zap.Float64("amount", amount))

	details := &models.InvoiceDetails{
		InvoiceID:       invoiceID,
		TotalAmount:     amount,
		UserName:        reads.UserName,
		PaymentStatus:   models.PaymentStatusPending,
		AppointmentDate: req.Date,
		CreatedAt:       now.Format(models.CreatedAtDisplayLayout),
		ShopName:        reads.ShopName,
		Services:        serviceNames,
		VehicleDetails:  reads.VehicleDetails,
		ShopID:          req.ShopID,
		ServicePrices:   s.bookedPrices(req, services, shopRef),
	}

	s.notifyBooked(userID, details)
	return details, nil
}

func validateRequest(userID string, req models.AppointmentRequest) error {
	if userID == "" {
		return NewValidationError("user id is required")
	}
	if req.ShopID == "" || req.VehicleID == "" {
		return NewValidationError("shop and vehicle are required")
	}
	if req.Date == "" || req.Time == "" {
		return NewValidationError("date and time are required")
	}
	if len(req.Services) == 0 {
		return NewValidationError("at least one service is required")
	}
	if req.PaymentMethod != models.PaymentMethodCOD && req.PaymentMethod != models.PaymentMethodCard {
		return NewValidationError(fmt.Sprintf("unsupported payment method: %s", req.PaymentMethod))
	}
	return nil
}

// bookedPrices returns the per-service price breakdown for the freshly booked
// invoice: the client's quoted prices when it sent them, otherwise the shop's
// current catalogue prices.
func (s *DefaultBookingService) bookedPrices(req models.AppointmentRequest, services []models.Service, shopRef models.Ref) map[string]float64 {
	if len(req.ServicePrices) > 0 {
		return req.ServicePrices
	}

	prices := make(map[string]float64, len(services))
	for _, svc := range services {
		serviceRef := models.NewRef(database.ServicesCollection, svc.ID)
		if price, ok, err := s.Catalog.FindPrice(serviceRef, shopRef); err == nil && ok {
			prices[svc.ServiceName] = price
		}
	}
	return prices
}

// notifyBooked hands the confirmation push to the queue worker. Delivery is
// best effort and never affects the booking result. Without a dispatcher the
// push goes out directly.
func (s *DefaultBookingService) notifyBooked(userID string, details *models.InvoiceDetails) {
	if s.Dispatcher != nil {
		payload := models.BookingConfirmedPayload{
			UserID:    userID,
			InvoiceID: details.InvoiceID,
			ShopName:  details.ShopName,
			Date:      details.AppointmentDate,
		}
		if err := s.Dispatcher.DispatchBookingConfirmed(payload); err != nil {
			utils.GetLogger().Warn("failed to enqueue booking push",
				zap.String("userId", userID), zap.Error(err))
		}
		return
	}

	if s.NotificationSvc == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		body := fmt.Sprintf("Your appointment at %s on %s is confirmed.", details.ShopName, details.AppointmentDate)
		err := s.NotificationSvc.SendUserPushNotification(ctx, userID, "Appointment confirmed", body, map[string]string{
			"invoiceId": details.InvoiceID,
		})
		if err != nil {
			utils.GetLogger().Warn("booking push failed",
				zap.String("userId", userID), zap.Error(err))
		}
	}()
}
