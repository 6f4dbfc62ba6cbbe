package booking

import (
	"errors"
	"testing"

	"fixv/models"

	"github.com/stretchr/testify/require"
)

func seedAppointment(repo *fakeBookingRepo) {
	repo.appointments["appt-1"] = models.Appointment{
		AppointmentID: "appt-1",
		UserID:        models.NewRef("Users", "user-1"),
		ShopID:        models.NewRef("mechanic_shops", "shop-1"),
		VehicleID:     models.NewRef("Vehicles", "veh-1"),
		Services:      []models.Ref{models.NewRef("services", "svc-oil")},
		Date:          "2026-09-14",
		Time:          "10:30",
		Status:        models.AppointmentStatus{Confirmed: true},
		TransactionID: models.NewRef("payment_transactions", "txn-1"),
	}
	repo.transactions["txn-1"] = models.PaymentTransaction{
		TransactionID: "txn-1",
		PaymentStatus: models.PaymentStatusPending,
	}
}

func TestCancelAppointmentVoidsTransaction(t *testing.T) {
	svc, repo, _ := newTestService()
	seedAppointment(repo)

	require.NoError(t, svc.CancelAppointment("appt-1"))

	require.Empty(t, repo.appointments)
	require.Equal(t, models.PaymentStatusVoid, repo.transactions["txn-1"].PaymentStatus)
}

// The delete and the void are separate writes. When the void fails the
// appointment is already gone, the transaction stays pending, and the caller
// hears about it.
func TestCancelAppointmentVoidFailureLeavesTransactionPending(t *testing.T) {
	svc, repo, _ := newTestService()
	seedAppointment(repo)
	repo.voidErr = errors.New("connection reset")

	err := svc.CancelAppointment("appt-1")
	var be *BookingError
	require.ErrorAs(t, err, &be)
	require.Equal(t, "voidFailed", be.Code)

	require.Empty(t, repo.appointments)
	require.Equal(t, models.PaymentStatusPending, repo.transactions["txn-1"].PaymentStatus)
}

func TestCancelAppointmentNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.CancelAppointment("appt-missing")
	var be *BookingError
	require.ErrorAs(t, err, &be)
	require.Equal(t, "notFound", be.Code)
}

func TestRescheduleAppointment(t *testing.T) {
	svc, repo, _ := newTestService()
	seedAppointment(repo)

	require.NoError(t, svc.RescheduleAppointment("appt-1", "2026-09-21", "14:00"))
	require.Equal(t, "2026-09-21", repo.appointments["appt-1"].Date)
	require.Equal(t, "14:00", repo.appointments["appt-1"].Time)

	err := svc.RescheduleAppointment("appt-1", "", "14:00")
	var be *BookingError
	require.ErrorAs(t, err, &be)
	require.Equal(t, "validationError", be.Code)
}

func TestListUserAppointmentsResolvesRows(t *testing.T) {
	svc, repo, _ := newTestService()
	seedAppointment(repo)
	svc.Shops.(*fakeShopRepo).shops["shop-1"] = models.MechanicShop{ID: "shop-1", Name: "Speedy Motors"}
	svc.Vehicles.(*fakeVehicleRepo).vehicles["veh-1"] = models.Vehicle{
		ID: "veh-1", Make: "Toyota", Model: "Corolla", LicensePlate: "KDA 123X",
	}

	summaries, err := svc.ListUserAppointments("user-1")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.Equal(t, "Speedy Motors", summaries[0].ShopName)
	require.Equal(t, "Corolla Toyota KDA 123X", summaries[0].VehicleDetails)
	require.Equal(t, []string{"Oil Change"}, summaries[0].Services)

	summaries, err = svc.ListUserAppointments("user-other")
	require.NoError(t, err)
	require.Empty(t, summaries)
}
