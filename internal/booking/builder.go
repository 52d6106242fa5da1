// Package booking provides the step-by-step construction of validated,
// immutable bookings.
package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-booking-engine/internal/domain"
	"github.com/metinatakli/cinema-booking-engine/internal/pricing"
	"github.com/shopspring/decimal"
)

// Builder accumulates booking state through its fluent setters and produces
// an immutable domain.Booking from Build. A builder is single-use and must
// not be shared between goroutines.
type Builder struct {
	customer        *domain.Customer
	showtime        time.Time
	tickets         []domain.Ticket
	seats           []*domain.Seat
	status          domain.BookingStatus
	totalPrice      decimal.Decimal
	totalCalculated bool
}

func NewBuilder() *Builder {
	return &Builder{status: domain.BookingStatusPending}
}

func (b *Builder) SetCustomer(customer *domain.Customer) *Builder {
	b.customer = customer
	return b
}

func (b *Builder) SetShowtime(showtime time.Time) *Builder {
	b.showtime = showtime
	return b
}

// AddTicket appends a ticket; nil tickets are ignored.
func (b *Builder) AddTicket(ticket domain.Ticket) *Builder {
	if ticket != nil {
		b.tickets = append(b.tickets, ticket)
	}

	return b
}

// AddSeat appends a seat; nil seats are ignored.
func (b *Builder) AddSeat(seat *domain.Seat) *Builder {
	if seat != nil {
		b.seats = append(b.seats, seat)
	}

	return b
}

func (b *Builder) SetStatus(status domain.BookingStatus) *Builder {
	b.status = status
	return b
}

// CalculateTotal prices the accumulated tickets with the given strategy.
// It must run after the showtime and at least one ticket are set, and
// before Build.
func (b *Builder) CalculateTotal(strategy pricing.Strategy) error {
	if strategy == nil {
		return &domain.ValidationError{Field: "strategy", Reason: "is required"}
	}

	if len(b.tickets) == 0 {
		return &domain.ValidationError{Field: "tickets", Reason: "must not be empty"}
	}

	if b.showtime.IsZero() {
		return &domain.ValidationError{Field: "showtime", Reason: "must be set before calculating the total"}
	}

	b.totalPrice = strategy.Total(b.tickets, b.showtime)
	b.totalCalculated = true

	return nil
}

// Build validates the accumulated state and returns the booking. Each
// missing precondition fails with a ValidationError naming the field.
func (b *Builder) Build() (*domain.Booking, error) {
	id := uuid.NewString()
	createdAt := time.Now()

	if b.customer == nil {
		return nil, &domain.ValidationError{Field: "customer", Reason: "is required"}
	}

	if b.showtime.IsZero() {
		return nil, &domain.ValidationError{Field: "showtime", Reason: "is required"}
	}

	if len(b.tickets) == 0 {
		return nil, &domain.ValidationError{Field: "tickets", Reason: "at least one ticket is required"}
	}

	if len(b.seats) == 0 {
		return nil, &domain.ValidationError{Field: "seats", Reason: "at least one seat is required"}
	}

	if len(b.seats) < len(b.tickets) {
		return nil, &domain.ValidationError{Field: "seats", Reason: "not enough seats for all tickets"}
	}

	if !b.totalCalculated {
		return nil, &domain.ValidationError{Field: "totalPrice", Reason: "must be calculated before build"}
	}

	return domain.NewBooking(
		id,
		*b.customer,
		b.tickets,
		b.seats,
		b.showtime,
		b.totalPrice,
		b.status,
		createdAt,
	), nil
}
