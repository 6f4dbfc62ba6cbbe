package booking

import (
	"sync"

	"fixv/database"
	"fixv/models"
)

// GetInvoiceDetails assembles the flattened invoice read model: the stored
// invoice joined against its user, shop, vehicle and appointment documents
// plus the shop's price for each billed service. Every join fans out
// concurrently and settles independently; a missing or unreadable document
// contributes its placeholder, so a partially broken invoice still renders.
func (s *DefaultBookingService) GetInvoiceDetails(invoiceID string) (*models.InvoiceDetails, error) {
	invoice, err := s.Bookings.GetInvoice(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, NewNotFoundError("invoice", invoiceID)
	}

	details := &models.InvoiceDetails{
		InvoiceID:      invoice.InvoiceID,
		TotalAmount:    invoice.AmountDue,
		UserName:       "Unknown User",
		PaymentStatus:  invoice.PaymentStatus,
		CreatedAt:      invoice.CreatedAt.Format(models.CreatedAtDisplayLayout),
		ShopName:       "Unknown Shop",
		VehicleDetails: "Unknown Vehicle",
		ShopID:         invoice.ShopID.ID,
		ServicePrices:  map[string]float64{},
	}

	serviceNames := invoice.ServiceNames
	if len(serviceNames) == 0 {
		serviceNames = make([]string, len(invoice.Services))
		for i, ref := range invoice.Services {
			serviceNames[i] = s.serviceDisplayName(ref)
		}
	}
	details.Services = serviceNames

	var wg sync.WaitGroup
	var mu sync.Mutex

	wg.Add(1)
	go func() {
		defer wg.Done()
		if invoice.UserID.ID == "" {
			return
		}
		if user, err := s.Users.GetByID(invoice.UserID.ID); err == nil && user != nil && user.Name != "" {
			details.UserName = user.Name
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if name := s.shopDisplayName(invoice.ShopID); name != "" {
			details.ShopName = name
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if invoice.VehicleID.ID == "" {
			return
		}
		if vehicle, err := s.Vehicles.GetByID(invoice.VehicleID.ID); err == nil && vehicle != nil {
			details.VehicleDetails = vehicle.Description()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if invoice.AppointmentID.ID == "" {
			return
		}
		if appt, err := s.Bookings.GetAppointment(invoice.AppointmentID.ID); err == nil && appt != nil {
			details.AppointmentDate = appt.Date
		}
	}()

	shopRef := invoice.ShopID
	if shopRef.Collection == "" {
		shopRef.Collection = database.MechanicShopsCollection
	}
	for i, ref := range invoice.Services {
		name := ref.Display()
		if i < len(serviceNames) {
			name = serviceNames[i]
		}
		wg.Add(1)
		go func(name string, serviceRef models.Ref) {
			defer wg.Done()
			price, ok, err := s.Catalog.FindPrice(serviceRef, shopRef)
			if err != nil || !ok {
				return
			}
			mu.Lock()
			details.ServicePrices[name] = price
			mu.Unlock()
		}(name, ref)
	}

	wg.Wait()
	return details, nil
}
