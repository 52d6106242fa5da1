package event

import (
	"fmt"
	"log/slog"

	"github.com/metinatakli/cinema-booking-engine/internal/domain"
	"github.com/metinatakli/cinema-booking-engine/internal/mailer"
)

// LogObserver writes every booking event to the structured log.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) Update(e Event) {
	o.logger.Info("booking event",
		"event", string(e.Type),
		"booking_id", e.BookingID,
		"details", e.Details,
	)
}

var emailTemplates = map[domain.BookingEventType]string{
	domain.EventCreated:          "booking_created.tmpl",
	domain.EventConfirmed:        "booking_confirmed.tmpl",
	domain.EventCancelled:        "booking_cancelled.tmpl",
	domain.EventPaymentCompleted: "payment_completed.tmpl",
	domain.EventPaymentFailed:    "payment_failed.tmpl",
}

// EmailObserver sends customers an email for the lifecycle events that have
// a template. Seat inventory events are internal and produce no mail.
type EmailObserver struct {
	mailer mailer.Mailer
	logger *slog.Logger
}

func NewEmailObserver(m mailer.Mailer, logger *slog.Logger) *EmailObserver {
	return &EmailObserver{mailer: m, logger: logger}
}

func (o *EmailObserver) Update(e Event) {
	if e.CustomerEmail == "" {
		return
	}

	templateFile, ok := emailTemplates[e.Type]
	if !ok {
		return
	}

	err := o.mailer.Send(e.CustomerEmail, templateFile, e)
	if err != nil {
		o.logger.Error("failed to send booking email",
			"event", string(e.Type),
			"booking_id", e.BookingID,
			"error", err.Error(),
		)
	}
}

// SMSObserver simulates short customer notifications. Events without a
// phone number are skipped.
type SMSObserver struct {
	logger *slog.Logger
}

func NewSMSObserver(logger *slog.Logger) *SMSObserver {
	return &SMSObserver{logger: logger}
}

func (o *SMSObserver) Update(e Event) {
	if e.CustomerPhone == "" {
		return
	}

	o.logger.Info("sms sent",
		"phone", e.CustomerPhone,
		"message", smsText(e),
	)
}

func smsText(e Event) string {
	ref := e.BookingID
	if len(ref) > 8 {
		ref = ref[:8] + "..."
	}

	switch e.Type {
	case domain.EventCreated:
		return fmt.Sprintf("[Cinema] Booking created: %s Please complete payment.", ref)
	case domain.EventConfirmed:
		return fmt.Sprintf("[Cinema] CONFIRMED! Booking: %s See you at the cinema!", ref)
	case domain.EventCancelled:
		return fmt.Sprintf("[Cinema] Booking cancelled: %s Refund in 5-7 days.", ref)
	case domain.EventPaymentCompleted:
		return fmt.Sprintf("[Cinema] Payment successful for booking: %s", ref)
	case domain.EventPaymentFailed:
		return fmt.Sprintf("[Cinema] Payment failed for: %s Please retry.", ref)
	case domain.EventSeatsReserved:
		return "[Cinema] Seats reserved: " + e.Details
	case domain.EventSeatsReleased:
		return fmt.Sprintf("[Cinema] Seats released for: %s", ref)
	default:
		return fmt.Sprintf("[Cinema] Update for: %s %s", ref, e.Type)
	}
}
