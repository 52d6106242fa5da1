package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMovieNotFound   = errors.New("movie not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrPaymentNotFound = errors.New("payment not found")
	ErrGatewayNotFound = errors.New("payment gateway not found")
)

// ValidationError reports a missing or malformed field detected while
// constructing a domain object. The field name is part of the contract so
// callers can tell the failures apart.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
