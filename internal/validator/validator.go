package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-booking-engine/internal/domain"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("ticket_type", validateTicketType)
	validator.RegisterValidation("payment_method", validatePaymentMethod)

	return validator
}

func validateTicketType(fl validator.FieldLevel) bool {
	ticketType := domain.TicketType(fl.Field().String())

	return ticketType == domain.TicketTypeRegular || ticketType == domain.TicketTypeVIP
}

// paymentMethods mirrors the gateways registered at startup. Method names
// are matched case-insensitively, like the gateway registry does.
var paymentMethods = map[string]struct{}{
	"STRIPE": {},
	"PAYPAL": {},
	"CASH":   {},
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	_, ok := paymentMethods[strings.ToUpper(fl.Field().String())]

	return ok
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "ticket_type":
		return "must be one of REGULAR or VIP"
	case "payment_method":
		return "must be one of STRIPE, PAYPAL or CASH"
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	default:
		return "is invalid"
	}
}
