package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/metinatakli/cinema-booking-engine/internal/domain"
)

type InMemoryPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]*domain.Payment
	order    []string
}

func NewInMemoryPaymentRepository() *InMemoryPaymentRepository {
	return &InMemoryPaymentRepository{payments: make(map[string]*domain.Payment)}
}

func (r *InMemoryPaymentRepository) Insert(ctx context.Context, payment *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.payments[payment.ID]; ok {
		return fmt.Errorf("payment already exists: %s", payment.ID)
	}

	p := *payment
	r.payments[payment.ID] = &p
	r.order = append(r.order, payment.ID)

	return nil
}

func (r *InMemoryPaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.payments[payment.ID]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrPaymentNotFound, payment.ID)
	}

	p := *payment
	r.payments[payment.ID] = &p

	return nil
}

func (r *InMemoryPaymentRepository) GetById(ctx context.Context, id string) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.payments[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPaymentNotFound, id)
	}

	p := *payment

	return &p, nil
}

// GetByBookingId returns the first payment recorded for a booking, in
// insertion order.
func (r *InMemoryPaymentRepository) GetByBookingId(ctx context.Context, bookingID string) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.payments[id].BookingID == bookingID {
			p := *r.payments[id]
			return &p, nil
		}
	}

	return nil, fmt.Errorf("%w: no payment for booking %s", domain.ErrPaymentNotFound, bookingID)
}

func (r *InMemoryPaymentRepository) GetAll(ctx context.Context) ([]*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payments := make([]*domain.Payment, 0, len(r.order))
	for _, id := range r.order {
		p := *r.payments[id]
		payments = append(payments, &p)
	}

	return payments, nil
}
