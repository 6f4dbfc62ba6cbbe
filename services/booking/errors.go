package booking

import "fmt"

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &BookingError{
		Code:    "validationError",
		Message: msg,
	}
}

// NewServiceNotFoundError signals that a requested service name matched
// nothing in the catalogue. Booking aborts before any write.
func NewServiceNotFoundError(name string) error {
	return &BookingError{
		Code:    "serviceNotFound",
		Message: fmt.Sprintf("no service matches %q", name),
	}
}

func NewNotFoundError(what, id string) error {
	return &BookingError{
		Code:    "notFound",
		Message: fmt.Sprintf("%s %s not found", what, id),
	}
}

// NewVoidFailedError signals that the appointment was deleted but its
// payment transaction could not be voided and is still pending.
func NewVoidFailedError(transactionID string, cause error) error {
	return &BookingError{
		Code:    "voidFailed",
		Message: fmt.Sprintf("appointment deleted but transaction %s is still pending: %v", transactionID, cause),
	}
}
