package booking

import (
	"fixv/models"
	"fixv/utils"

	"go.uber.org/zap"
)

// ListUserAppointments returns a user's appointments as resolved display
// rows.
func (s *DefaultBookingService) ListUserAppointments(userID string) ([]models.AppointmentSummary, error) {
	if userID == "" {
		return nil, NewValidationError("user id is required")
	}

	appts, err := s.Bookings.ListAppointmentsByUser(userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.AppointmentSummary, 0, len(appts))
	for _, appt := range appts {
		summaries = append(summaries, s.summarizeAppointment(appt))
	}
	return summaries, nil
}

// GetAppointmentDetails returns one appointment as a resolved display row.
func (s *DefaultBookingService) GetAppointmentDetails(id string) (*models.AppointmentSummary, error) {
	appt, err := s.Bookings.GetAppointment(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, NewNotFoundError("appointment", id)
	}

	summary := s.summarizeAppointment(*appt)
	return &summary, nil
}

// RescheduleAppointment changes an appointment's date and time.
func (s *DefaultBookingService) RescheduleAppointment(id, date, timeOfDay string) error {
	if date == "" || timeOfDay == "" {
		return NewValidationError("date and time are required")
	}

	appt, err := s.Bookings.GetAppointment(id)
	if err != nil {
		return err
	}
	if appt == nil {
		return NewNotFoundError("appointment", id)
	}
	return s.Bookings.UpdateAppointmentSchedule(id, date, timeOfDay)
}

// CancelAppointment deletes the appointment, then voids its payment
// transaction. The two writes are deliberately separate: the delete is the
// user-visible cancellation, the void is bookkeeping. When the void fails the
// transaction stays pending and the error says so; the reconciliation sweep
// picks those up later.
func (s *DefaultBookingService) CancelAppointment(id string) error {
	appt, err := s.Bookings.GetAppointment(id)
	if err != nil {
		return err
	}
	if appt == nil {
		return NewNotFoundError("appointment", id)
	}

	if err := s.Bookings.DeleteAppointment(id); err != nil {
		return err
	}

	transactionID := appt.TransactionID.ID
	if transactionID == "" {
		transactionID = appt.TransactionID.Display()
	}
	if transactionID == "" {
		return nil
	}

	if err := s.Bookings.SetTransactionStatus(transactionID, models.PaymentStatusVoid); err != nil {
		utils.GetLogger().Error("cancellation left transaction pending",
			zap.String("appointmentId", id),
			zap.String("transactionId", transactionID),
			zap.Error(err))
		return NewVoidFailedError(transactionID, err)
	}

	utils.GetLogger().Info("appointment cancelled",
		zap.String("appointmentId", id),
		zap.String("transactionId", transactionID))
	return nil
}
