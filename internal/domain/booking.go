package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is the immutable record of a reservation request. Only the status
// changes after construction, and only through SetStatus.
type Booking struct {
	id         string
	customer   Customer
	tickets    []Ticket
	seats      []*Seat
	showtime   time.Time
	totalPrice decimal.Decimal
	status     BookingStatus
	createdAt  time.Time
}

// NewBooking copies the ticket and seat lists so later mutations of the
// caller's slices cannot reach into the booking.
func NewBooking(
	id string,
	customer Customer,
	tickets []Ticket,
	seats []*Seat,
	showtime time.Time,
	totalPrice decimal.Decimal,
	status BookingStatus,
	createdAt time.Time,
) *Booking {

	b := &Booking{
		id:         id,
		customer:   customer,
		tickets:    make([]Ticket, len(tickets)),
		seats:      make([]*Seat, len(seats)),
		showtime:   showtime,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
	}

	copy(b.tickets, tickets)
	copy(b.seats, seats)

	return b
}

func (b *Booking) ID() string { return b.id }

func (b *Booking) Customer() Customer { return b.customer }

func (b *Booking) Tickets() []Ticket {
	tickets := make([]Ticket, len(b.tickets))
	copy(tickets, b.tickets)
	return tickets
}

func (b *Booking) Seats() []*Seat {
	seats := make([]*Seat, len(b.seats))
	copy(seats, b.seats)
	return seats
}

func (b *Booking) Showtime() time.Time { return b.showtime }

func (b *Booking) TotalPrice() decimal.Decimal { return b.totalPrice }

func (b *Booking) Status() BookingStatus { return b.status }

func (b *Booking) CreatedAt() time.Time { return b.createdAt }

func (b *Booking) SetStatus(status BookingStatus) { b.status = status }

// BookingSummary is the minimal booking state tracked by the booking
// lifecycle service and handed to the storage collaborator.
type BookingSummary struct {
	ID            string
	CustomerEmail string
	CustomerPhone string
	MovieTitle    string
	SeatCount     int
	TotalAmount   decimal.Decimal
	Status        BookingStatus
	CreatedAt     time.Time
}

type BookingRepository interface {
	Insert(ctx context.Context, booking *BookingSummary) error
	GetById(ctx context.Context, id string) (*BookingSummary, error)
	GetAll(ctx context.Context) ([]*BookingSummary, error)
	UpdateStatus(ctx context.Context, id string, status BookingStatus) error
}
