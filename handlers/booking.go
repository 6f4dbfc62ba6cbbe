package handlers

import (
	"errors"
	"net/http"

	"fixv/middleware"
	"fixv/models"
	"fixv/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func bookingErrorStatus(err error) (int, bool) {
	var be *booking.BookingError
	if !errors.As(err, &be) {
		return 0, false
	}
	switch be.Code {
	case "validationError":
		return http.StatusBadRequest, true
	case "serviceNotFound", "notFound":
		return http.StatusNotFound, true
	default:
		return http.StatusInternalServerError, true
	}
}

// BookAppointmentHandler books an appointment and returns the invoice read
// model for immediate display.
func BookAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := middleware.AuthedUserID(c)

	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	details, err := BookingSvc.BookAppointment(c.Request.Context(), userID, req)
	if err != nil {
		if status, ok := bookingErrorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Booking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Booking failed"})
		return
	}
	c.JSON(http.StatusCreated, details)
}

// ListAppointmentsHandler lists the caller's appointments with every
// reference resolved.
func ListAppointmentsHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := middleware.AuthedUserID(c)

	summaries, err := BookingSvc.ListUserAppointments(userID)
	if err != nil {
		logger.Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list appointments"})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetAppointmentHandler returns one resolved appointment.
func GetAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)

	summary, err := BookingSvc.GetAppointmentDetails(c.Param("id"))
	if err != nil {
		if status, ok := bookingErrorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to fetch appointment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch appointment"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// RescheduleAppointmentHandler changes an appointment's date and time.
func RescheduleAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Date string `json:"date" binding:"required"`
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := BookingSvc.RescheduleAppointment(c.Param("id"), req.Date, req.Time); err != nil {
		if status, ok := bookingErrorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to reschedule appointment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reschedule appointment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment rescheduled"})
}

// CancelAppointmentHandler deletes an appointment and voids its transaction.
func CancelAppointmentHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := BookingSvc.CancelAppointment(c.Param("id")); err != nil {
		if status, ok := bookingErrorStatus(err); ok {
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to cancel appointment", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment cancelled"})
}
