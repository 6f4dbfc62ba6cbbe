package booking

import (
	"strings"
	"sync"

	"fixv/models"
)

// resolveServices maps requested service names to catalogue entries. Matching
// is case-insensitive: an exact match wins, otherwise a containment match in
// either direction ("Oil Change" matches "Full Oil Change Service" and vice
// versa). The first name with no match aborts the whole resolution, so a bad
// request never reaches the store.
func (s *DefaultBookingService) resolveServices(names []string) ([]models.Service, error) {
	catalogue, err := s.Catalog.GetAllServices()
	if err != nil {
		return nil, err
	}

	resolved := make([]models.Service, 0, len(names))
	for _, name := range names {
		match, ok := matchService(catalogue, name)
		if !ok {
			return nil, NewServiceNotFoundError(name)
		}
		resolved = append(resolved, match)
	}
	return resolved, nil
}

func matchService(catalogue []models.Service, name string) (models.Service, bool) {
	wanted := strings.ToLower(strings.TrimSpace(name))
	if wanted == "" {
		return models.Service{}, false
	}

	for _, svc := range catalogue {
		if strings.ToLower(svc.ServiceName) == wanted {
			return svc, true
		}
	}
	for _, svc := range catalogue {
		have := strings.ToLower(svc.ServiceName)
		if strings.Contains(have, wanted) || strings.Contains(wanted, have) {
			return svc, true
		}
	}
	return models.Service{}, false
}

// serviceDisplayName resolves a stored service reference to its display name.
// Embedded refs already carry the name; by-id refs are looked up in the
// catalogue. Anything unresolvable falls back to the reference's own display
// string, never an error.
func (s *DefaultBookingService) serviceDisplayName(ref models.Ref) string {
	if ref.Kind == models.RefEmbedded {
		return ref.Name
	}
	if ref.ID != "" {
		if svc, err := s.Catalog.GetServiceByID(ref.ID); err == nil && svc != nil {
			return svc.ServiceName
		}
	}
	return ref.Display()
}

// summarizeAppointment resolves every reference an appointment carries into a
// display row. The shop, vehicle and service lookups fan out concurrently and
// each settles independently; a failed lookup yields its placeholder, never
// an error.
func (s *DefaultBookingService) summarizeAppointment(appt models.Appointment) models.AppointmentSummary {
	summary := models.AppointmentSummary{
		AppointmentID:  appt.AppointmentID,
		ShopName:       "Unknown Shop",
		Date:           appt.Date,
		Time:           appt.Time,
		Confirmed:      appt.Status.Confirmed,
		VehicleDetails: "Unknown Vehicle",
		Services:       make([]string, len(appt.Services)),
		TransactionID:  appt.TransactionID.ID,
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if name := s.shopDisplayName(appt.ShopID); name != "" {
			summary.ShopName = name
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if appt.VehicleID.ID == "" {
			return
		}
		if vehicle, err := s.Vehicles.GetByID(appt.VehicleID.ID); err == nil && vehicle != nil {
			summary.VehicleDetails = vehicle.Description()
		}
	}()

	for i, ref := range appt.Services {
		wg.Add(1)
		go func(i int, ref models.Ref) {
			defer wg.Done()
			summary.Services[i] = s.serviceDisplayName(ref)
		}(i, ref)
	}

	wg.Wait()
	return summary
}

func (s *DefaultBookingService) shopDisplayName(ref models.Ref) string {
	if ref.Kind == models.RefEmbedded {
		return ref.Name
	}
	if ref.ID == "" {
		return ""
	}
	shop, err := s.Shops.GetByID(ref.ID)
	if err != nil || shop == nil {
		return ""
	}
	return shop.Name
}
