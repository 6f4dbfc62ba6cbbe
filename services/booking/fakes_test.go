package booking

import (
	"context"
	"errors"
	"time"

	"fixv/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeBookingRepo keeps booked sets in memory and mimics the atomicity
// contract: a failing commit stores nothing.
type fakeBookingRepo struct {
	bookErr   error
	bookCalls int
	reads     models.BookingReads

	appointments map[string]models.Appointment
	invoices     map[string]models.Invoice
	transactions map[string]models.PaymentTransaction

	deleteErr error
	voidErr   error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		reads: models.BookingReads{
			UserName:       "Unknown User",
			ShopName:       "Unknown Shop",
			VehicleDetails: "Unknown Vehicle",
		},
		appointments: map[string]models.Appointment{},
		invoices:     map[string]models.Invoice{},
		transactions: map[string]models.PaymentTransaction{},
	}
}

func (f *fakeBookingRepo) BookAppointment(ctx context.Context, set *models.BookingSet) (*models.BookingReads, error) {
	f.bookCalls++
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	f.transactions[set.Transaction.TransactionID] = set.Transaction
	f.appointments[set.Appointment.AppointmentID] = set.Appointment
	f.invoices[set.Invoice.InvoiceID] = set.Invoice
	reads := f.reads
	return &reads, nil
}

func (f *fakeBookingRepo) GetAppointment(id string) (*models.Appointment, error) {
	if appt, ok := f.appointments[id]; ok {
		return &appt, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) ListAppointmentsByUser(userID string) ([]models.Appointment, error) {
	var appts []models.Appointment
	for _, appt := range f.appointments {
		if appt.UserID.ID == userID {
			appts = append(appts, appt)
		}
	}
	return appts, nil
}

func (f *fakeBookingRepo) UpdateAppointmentSchedule(id, date, timeOfDay string) error {
	appt, ok := f.appointments[id]
	if !ok {
		return errors.New("appointment not found")
	}
	appt.Date = date
	appt.Time = timeOfDay
	f.appointments[id] = appt
	return nil
}

func (f *fakeBookingRepo) DeleteAppointment(id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.appointments[id]; !ok {
		return errors.New("appointment not found")
	}
	delete(f.appointments, id)
	return nil
}

func (f *fakeBookingRepo) GetInvoice(id string) (*models.Invoice, error) {
	if inv, ok := f.invoices[id]; ok {
		return &inv, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) GetTransaction(id string) (*models.PaymentTransaction, error) {
	if txn, ok := f.transactions[id]; ok {
		return &txn, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) SetTransactionStatus(id, status string) error {
	if f.voidErr != nil {
		return f.voidErr
	}
	txn, ok := f.transactions[id]
	if !ok {
		return errors.New("transaction not found")
	}
	txn.PaymentStatus = status
	f.transactions[id] = txn
	return nil
}

func (f *fakeBookingRepo) VoidOrphanedTransactions(ctx context.Context, olderThan time.Time) (int, error) {
	voided := 0
	for id, txn := range f.transactions {
		if txn.PaymentStatus != models.PaymentStatusPending || !txn.CreatedAt.Before(olderThan) {
			continue
		}
		orphaned := true
		for _, appt := range f.appointments {
			// Decoded legacy refs carry the bare id in Text instead of ID.
			if appt.TransactionID.ID == id || appt.TransactionID.Text == id {
				orphaned = false
				break
			}
		}
		if orphaned {
			txn.PaymentStatus = models.PaymentStatusVoid
			f.transactions[id] = txn
			voided++
		}
	}
	return voided, nil
}

type fakeDispatcher struct {
	dispatched []models.BookingConfirmedPayload
	err        error
}

func (f *fakeDispatcher) DispatchBookingConfirmed(payload models.BookingConfirmedPayload) error {
	if f.err != nil {
		return f.err
	}
	f.dispatched = append(f.dispatched, payload)
	return nil
}

type fakeUserRepo struct {
	users map[string]models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) Update(u *models.User) error {
	f.users[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }

func (f *fakeUserRepo) AddDeviceToken(id, token string) error { return nil }

type fakeShopRepo struct {
	shops map[string]models.MechanicShop
}

func (f *fakeShopRepo) GetByID(id string) (*models.MechanicShop, error) {
	if s, ok := f.shops[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (f *fakeShopRepo) GetByName(name string) (*models.MechanicShop, error) {
	for _, s := range f.shops {
		if s.Name == name {
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeShopRepo) GetAll() ([]models.MechanicShop, error) {
	var shops []models.MechanicShop
	for _, s := range f.shops {
		shops = append(shops, s)
	}
	return shops, nil
}

type fakeVehicleRepo struct {
	vehicles map[string]models.Vehicle
}

func (f *fakeVehicleRepo) GetByID(id string) (*models.Vehicle, error) {
	if v, ok := f.vehicles[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func (f *fakeVehicleRepo) ListByOwner(ownerID string) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	for _, v := range f.vehicles {
		if v.OwnerID == ownerID {
			vehicles = append(vehicles, v)
		}
	}
	return vehicles, nil
}

func (f *fakeVehicleRepo) Create(v *models.Vehicle) error {
	f.vehicles[v.ID] = *v
	return nil
}

func (f *fakeVehicleRepo) Update(v *models.Vehicle) error {
	f.vehicles[v.ID] = *v
	return nil
}

func (f *fakeVehicleRepo) Delete(id string) error {
	delete(f.vehicles, id)
	return nil
}

type fakeCatalogRepo struct {
	services []models.Service
	// prices is keyed by serviceID|shopID.
	prices map[string]float64
}

func (f *fakeCatalogRepo) GetAllServices() ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	for _, s := range f.services {
		if s.ID == id {
			svc := s
			return &svc, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalogRepo) FindPrice(serviceRef, shopRef models.Ref) (float64, bool, error) {
	price, ok := f.prices[serviceRef.ID+"|"+shopRef.ID]
	return price, ok, nil
}

func (f *fakeCatalogRepo) ListPricesByShop(shopRef models.Ref) ([]models.ShopService, error) {
	var rows []models.ShopService
	for key, price := range f.prices {
		for _, s := range f.services {
			if key == s.ID+"|"+shopRef.ID {
				rows = append(rows, models.ShopService{
					ShopID:    shopRef,
					ServiceID: models.NewRef("services", s.ID),
					Price:     price,
				})
			}
		}
	}
	return rows, nil
}
