package domain

// BookingEventType is the vocabulary of the booking event bus.
type BookingEventType string

const (
	EventCreated          BookingEventType = "CREATED"
	EventConfirmed        BookingEventType = "CONFIRMED"
	EventCancelled        BookingEventType = "CANCELLED"
	EventPaymentCompleted BookingEventType = "PAYMENT_COMPLETED"
	EventPaymentFailed    BookingEventType = "PAYMENT_FAILED"
	EventSeatsReserved    BookingEventType = "SEATS_RESERVED"
	EventSeatsReleased    BookingEventType = "SEATS_RELEASED"
)
