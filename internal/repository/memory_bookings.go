package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/metinatakli/cinema-booking-engine/internal/domain"
)

type InMemoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.BookingSummary
	order    []string
}

func NewInMemoryBookingRepository() *InMemoryBookingRepository {
	return &InMemoryBookingRepository{bookings: make(map[string]*domain.BookingSummary)}
}

func (r *InMemoryBookingRepository) Insert(ctx context.Context, booking *domain.BookingSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID]; ok {
		return fmt.Errorf("booking already exists: %s", booking.ID)
	}

	b := *booking
	r.bookings[booking.ID] = &b
	r.order = append(r.order, booking.ID)

	return nil
}

func (r *InMemoryBookingRepository) GetById(ctx context.Context, id string) (*domain.BookingSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrBookingNotFound, id)
	}

	b := *booking

	return &b, nil
}

func (r *InMemoryBookingRepository) GetAll(ctx context.Context) ([]*domain.BookingSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]*domain.BookingSummary, 0, len(r.order))
	for _, id := range r.order {
		b := *r.bookings[id]
		bookings = append(bookings, &b)
	}

	return bookings, nil
}

func (r *InMemoryBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrBookingNotFound, id)
	}

	booking.Status = status

	return nil
}
