package booking

import (
	"context"
	"testing"

	"fixv/models"

	"github.com/stretchr/testify/require"
)

// Booking an appointment and then projecting its invoice must agree on every
// shared field.
func TestInvoiceProjectionRoundTrip(t *testing.T) {
	svc, repo, catalog := newTestService()
	svc.Users.(*fakeUserRepo).users["user-1"] = models.User{ID: "user-1", Name: "Dana"}
	svc.Shops.(*fakeShopRepo).shops["shop-1"] = models.MechanicShop{ID: "shop-1", Name: "Speedy Motors"}
	svc.Vehicles.(*fakeVehicleRepo).vehicles["veh-1"] = models.Vehicle{
		ID: "veh-1", Make: "Toyota", Model: "Corolla", LicensePlate: "KDA 123X",
	}
	catalog.prices["svc-oil|shop-1"] = 25.0
	catalog.prices["svc-tire|shop-1"] = 40.0
	repo.reads = models.BookingReads{
		UserName:       "Dana",
		ShopName:       "Speedy Motors",
		VehicleDetails: "Corolla Toyota KDA 123X",
	}

	booked, err := svc.BookAppointment(context.Background(), "user-1", bookingRequest())
	require.NoError(t, err)

	projected, err := svc.GetInvoiceDetails(booked.InvoiceID)
	require.NoError(t, err)

	require.Equal(t, booked.InvoiceID, projected.InvoiceID)
	require.Equal(t, booked.TotalAmount, projected.TotalAmount)
	require.Equal(t, booked.UserName, projected.UserName)
	require.Equal(t, booked.ShopName, projected.ShopName)
	require.Equal(t, booked.VehicleDetails, projected.VehicleDetails)
	require.Equal(t, booked.AppointmentDate, projected.AppointmentDate)
	require.Equal(t, booked.CreatedAt, projected.CreatedAt)
	require.Equal(t, booked.Services, projected.Services)
	require.Equal(t, booked.ShopID, projected.ShopID)
	require.Equal(t, 25.0, projected.ServicePrices["Oil Change"])
	require.Equal(t, 40.0, projected.ServicePrices["Tire Rotation"])
}

func TestInvoiceProjectionPlaceholders(t *testing.T) {
	svc, repo, _ := newTestService()

	// An invoice whose user, shop, vehicle and appointment documents are all
	// gone still renders with placeholders.
	repo.invoices["inv-1"] = models.Invoice{
		InvoiceID:     "inv-1",
		UserID:        models.NewRef("Users", "ghost"),
		ShopID:        models.NewRef("mechanic_shops", "ghost"),
		VehicleID:     models.NewRef("Vehicles", "ghost"),
		AmountDue:     80.0,
		Services:      []models.Ref{models.NewRef("services", "svc-brake")},
		ServiceNames:  []string{"Brake Inspection"},
		AppointmentID: models.NewRef("appointments", "ghost"),
		PaymentStatus: models.PaymentStatusPending,
	}

	details, err := svc.GetInvoiceDetails("inv-1")
	require.NoError(t, err)

	require.Equal(t, "Unknown User", details.UserName)
	require.Equal(t, "Unknown Shop", details.ShopName)
	require.Equal(t, "Unknown Vehicle", details.VehicleDetails)
	require.Empty(t, details.AppointmentDate)
	require.Equal(t, 80.0, details.TotalAmount)
	require.Equal(t, []string{"Brake Inspection"}, details.Services)
	require.Empty(t, details.ServicePrices)
}

func TestInvoiceProjectionNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetInvoiceDetails("inv-missing")
	var be *BookingError
	require.ErrorAs(t, err, &be)
	require.Equal(t, "notFound", be.Code)
}

func TestInvoiceProjectionResolvesNamesWhenUnstored(t *testing.T) {
	svc, repo, _ := newTestService()

	// Older invoices carry service refs but no denormalized names.
	repo.invoices["inv-2"] = models.Invoice{
		InvoiceID: "inv-2",
		ShopID:    models.NewRef("mechanic_shops", "shop-1"),
		Services: []models.Ref{
			models.NewRef("services", "svc-oil"),
			{Kind: models.RefEmbedded, Name: "Wheel Alignment"},
		},
	}

	details, err := svc.GetInvoiceDetails("inv-2")
	require.NoError(t, err)
	require.Equal(t, []string{"Oil Change", "Wheel Alignment"}, details.Services)
}
