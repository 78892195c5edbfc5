package services

import "errors"

var (
	ErrCartEmpty        = errors.New("cart is empty, cannot create order")
	ErrInvalidSignature = errors.New("invalid payment signature")
)

// ValidationError marks input problems detected before any write. It maps
// to HTTP 400 at the controller layer.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
