package booking

import (
	"context"
	"errors"
	"testing"

	"fixv/models"

	"github.com/stretchr/testify/require"
)

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeCatalogRepo) {
	repo := newFakeBookingRepo()
	catalog := &fakeCatalogRepo{
		services: []models.Service{
			{ID: "svc-oil", ServiceName: "Oil Change"},
			{ID: "svc-tire", ServiceName: "Tire Rotation"},
			{ID: "svc-brake", ServiceName: "Brake Inspection"},
		},
		prices: map[string]float64{},
	}
	svc := &DefaultBookingService{
		Bookings: repo,
		Users:    &fakeUserRepo{users: map[string]models.User{}},
		Shops:    &fakeShopRepo{shops: map[string]models.MechanicShop{}},
		Vehicles: &fakeVehicleRepo{vehicles: map[string]models.Vehicle{}},
		Catalog:  catalog,
	}
	return svc, repo, catalog
}

func bookingRequest() models.AppointmentRequest {
	return models.AppointmentRequest{
		ShopID:    "shop-1",
		VehicleID: "veh-1",
		Date:      "2026-09-14",
		Time:      "10:30",
		Services:  []string{"Oil Change", "Tire Rotation"},
		ServicePrices: map[string]float64{
			"Oil Change":    25.0,
			"Tire Rotation": 40.0,
		},
		PaymentMethod: models.PaymentMethodCOD,
	}
}

func TestBookAppointmentCommitsCrossReferencedSet(t *testing.T) {
	svc, repo, _ := newTestService()
	svc.Bookings.(*fakeBookingRepo).reads = models.BookingReads{
		UserName:       "Dana",
		ShopName:       "Speedy Motors",
		VehicleDetails: "Corolla Toyota KDA 123X",
	}

	details, err := svc.BookAppointment(context.Background(), "user-1", bookingRequest())
	require.NoError(t, err)

	require.Len(t, repo.transactions, 1)
	require.Len(t, repo.appointments, 1)
	require.Len(t, repo.invoices, 1)

	var txn models.PaymentTransaction
	for _, v := range repo.transactions {
		txn = v
	}
	var appt models.Appointment
	for _, v := range repo.appointments {
		appt = v
	}
	var inv models.Invoice
	for _, v := range repo.invoices {
		inv = v
	}

	// The three documents must point at each other.
	require.Equal(t, inv.InvoiceID, txn.InvoiceID.ID)
	require.Equal(t, txn.TransactionID, inv.TransactionID.ID)
	require.Equal(t, txn.TransactionID, appt.TransactionID.ID)
	require.Equal(t, appt.AppointmentID, inv.AppointmentID.ID)

	require.Equal(t, 65.0, inv.AmountDue)
	require.Equal(t, 65.0, txn.TotalPrice)
	require.Equal(t, models.PaymentStatusPending, txn.PaymentStatus)
	require.True(t, appt.Status.Confirmed)
	require.Equal(t, []string{"Oil Change", "Tire Rotation"}, inv.ServiceNames)

	require.Equal(t, 65.0, details.TotalAmount)
	require.Equal(t, "Dana", details.UserName)
	require.Equal(t, "Speedy Motors", details.ShopName)
	require.Equal(t, "Corolla Toyota KDA 123X", details.VehicleDetails)
	require.Equal(t, "2026-09-14", details.AppointmentDate)
	require.Equal(t, 25.0, details.ServicePrices["Oil Change"])
}

func TestBookAppointmentUnknownServiceWritesNothing(t *testing.T) {
	svc, repo, _ := newTestService()

	req := bookingRequest()
	req.Services = []string{"Oil Change", "Flux Capacitor Repair"}

	_, err := svc.BookAppointment(context.Background(), "user-1", req)
	require.Error(t, err)

	var be *BookingError
	require.ErrorAs(t, err, &be)
	require.Equal(t, "serviceNotFound", be.Code)

	require.Zero(t, repo.bookCalls)
	require.Empty(t, repo.transactions)
	require.Empty(t, repo.appointments)
	require.Empty(t, repo.invoices)
}

func TestBookAppointmentCommitFailureSurfaces(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.bookErr = errors.New("transaction aborted")

	_, err := svc.BookAppointment(context.Background(), "user-1", bookingRequest())
	require.ErrorContains(t, err, "transaction aborted")
	require.Empty(t, repo.invoices)
}

func TestBookAppointmentValidation(t *testing.T) {
	svc, _, _ := newTestService()

	req := bookingRequest()
	req.PaymentMethod = "barter"
	_, err := svc.BookAppointment(context.Background(), "user-1", req)
	var be *BookingError
	require.ErrorAs(t, err, &be)
	require.Equal(t, "validationError", be.Code)

	req = bookingRequest()
	req.Services = nil
	_, err = svc.BookAppointment(context.Background(), "user-1", req)
	require.ErrorAs(t, err, &be)
	require.Equal(t, "validationError", be.Code)

	_, err = svc.BookAppointment(context.Background(), "", bookingRequest())
	require.ErrorAs(t, err, &be)
	require.Equal(t, "validationError", be.Code)
}

func TestBookAppointmentQueuesConfirmationPush(t *testing.T) {
	svc, repo, _ := newTestService()
	svc.Bookings.(*fakeBookingRepo).reads = models.BookingReads{ShopName: "Speedy Motors"}
	dispatcher := &fakeDispatcher{}
	svc.Dispatcher = dispatcher

	details, err := svc.BookAppointment(context.Background(), "user-1", bookingRequest())
	require.NoError(t, err)

	require.Len(t, dispatcher.dispatched, 1)
	push := dispatcher.dispatched[0]
	require.Equal(t, "user-1", push.UserID)
	require.Equal(t, details.InvoiceID, push.InvoiceID)
	require.Equal(t, "Speedy Motors", push.ShopName)
	require.Equal(t, "2026-09-14", push.Date)
	require.Len(t, repo.invoices, 1)
}

func TestBookAppointmentEnqueueFailureDoesNotFailBooking(t *testing.T) {
	svc, repo, _ := newTestService()
	svc.Dispatcher = &fakeDispatcher{err: errors.New("queue down")}

	_, err := svc.BookAppointment(context.Background(), "user-1", bookingRequest())
	require.NoError(t, err)
	require.Len(t, repo.invoices, 1)
}

func TestBookAppointmentTotalFallsBackToPriceSum(t *testing.T) {
	svc, repo, _ := newTestService()

	req := bookingRequest()
	req.TotalCost = 0

	_, err := svc.BookAppointment(context.Background(), "user-1", req)
	require.NoError(t, err)

	for _, inv := range repo.invoices {
		require.Equal(t, 65.0, inv.AmountDue)
	}
}
