package booking

import "fmt"

// BookingError carries a machine-readable code alongside the message.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrProviderNotFound signals that the requested sitter does not exist.
func ErrProviderNotFound(id string) error {
	return &BookingError{
		Code:    "providerNotFound",
		Message: fmt.Sprintf("provider %s not found", id),
	}
}

// ErrBookingNotFound signals that the requested booking does not exist.
func ErrBookingNotFound(id string) error {
	return &BookingError{
		Code:    "bookingNotFound",
		Message: fmt.Sprintf("booking %s not found", id),
	}
}
