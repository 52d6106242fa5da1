package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/metinatakli/cinema-booking-engine/internal/domain"
	"github.com/metinatakli/cinema-booking-engine/internal/event"
	"github.com/metinatakli/cinema-booking-engine/internal/gateway"
	"github.com/shopspring/decimal"
)

const defaultGatewayTimeout = 2 * time.Second

// PaymentService owns the payment lifecycle and drives the gateway
// registry. Payment attempts are serialized per booking id.
type PaymentService struct {
	registry *gateway.Registry
	repo     domain.PaymentRepository
	subject  *event.Subject
	logger   *slog.Logger
	timeout  time.Duration

	mu           sync.Mutex
	bookingLocks map[string]*bookingLock
}

// bookingLock serializes payment attempts for one booking. The reference
// count lets the service drop the entry once the last holder releases it,
// keeping the lock map bounded by in-flight bookings.
type bookingLock struct {
	mu   sync.Mutex
	refs int
}

func NewPaymentService(
	registry *gateway.Registry,
	repo domain.PaymentRepository,
	subject *event.Subject,
	logger *slog.Logger,
) *PaymentService {

	return &PaymentService{
		registry:     registry,
		repo:         repo,
		subject:      subject,
		logger:       logger,
		timeout:      defaultGatewayTimeout,
		bookingLocks: make(map[string]*bookingLock),
	}
}

// SetGatewayTimeout bounds how long a single gateway call may take before
// it resolves to a failed payment.
func (s *PaymentService) SetGatewayTimeout(d time.Duration) {
	s.timeout = d
}

func (s *PaymentService) lockBooking(bookingID string) *bookingLock {
	s.mu.Lock()
	lock, ok := s.bookingLocks[bookingID]
	if !ok {
		lock = &bookingLock{}
		s.bookingLocks[bookingID] = lock
	}
	lock.refs++
	s.mu.Unlock()

	lock.mu.Lock()

	return lock
}

func (s *PaymentService) unlockBooking(bookingID string, lock *bookingLock) {
	lock.mu.Unlock()

	s.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(s.bookingLocks, bookingID)
	}
	s.mu.Unlock()
}

// ProcessPayment runs a single gateway attempt for the booking. An unknown
// payment method emits EventPaymentFailed and reports false rather than an
// error; the orchestrator needs to keep running to compensate. A non-nil
// error only signals infrastructure trouble (storage).
func (s *PaymentService) ProcessPayment(
	ctx context.Context,
	bookingID string,
	amount decimal.Decimal,
	method, email, phone string,
) (bool, error) {

	adapter, err := s.registry.Resolve(method)
	if err != nil {
		s.logger.Error("payment gateway not found", "method", method, "booking_id", bookingID)
		s.subject.Notify(bookingID, domain.EventPaymentFailed, email, phone,
			"Payment gateway not available: "+method)

		return false, nil
	}

	lock := s.lockBooking(bookingID)
	defer s.unlockBooking(bookingID, lock)

	payment := domain.NewPayment(bookingID, amount, method)

	err = s.repo.Insert(ctx, payment)
	if err != nil {
		return false, err
	}

	s.logger.Info("processing payment",
		"payment_id", payment.ID,
		"booking_id", bookingID,
		"gateway", adapter.Name(),
		"amount", amount.StringFixed(2),
	)

	gatewayCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	ok := adapter.ProcessPayment(gatewayCtx, payment)

	err = s.repo.Update(ctx, payment)
	if err != nil {
		return false, err
	}

	if ok {
		details := fmt.Sprintf("Payment of $%s via %s - Transaction: %s",
			amount.StringFixed(2), adapter.Name(), payment.TransactionID)
		s.subject.Notify(bookingID, domain.EventPaymentCompleted, email, phone, details)
	} else {
		s.subject.Notify(bookingID, domain.EventPaymentFailed, email, phone,
			"Payment failed via "+adapter.Name())
	}

	return ok, nil
}

// RefundPayment refunds a completed payment through its original gateway.
// A successful refund emits EventCancelled; the bus has no dedicated refund
// event kind. Unknown payment ids fail without emitting.
func (s *PaymentService) RefundPayment(ctx context.Context, paymentID, email, phone string) (bool, error) {
	payment, err := s.repo.GetById(ctx, paymentID)
	if err != nil {
		return false, err
	}

	adapter, err := s.registry.Resolve(payment.Method)
	if err != nil {
		return false, err
	}

	gatewayCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	refundID, ok := adapter.RefundPayment(gatewayCtx, payment)
	if !ok {
		s.logger.Warn("refund rejected by gateway",
			"payment_id", paymentID,
			"gateway", adapter.Name(),
			"status", string(payment.Status),
		)

		return false, nil
	}

	err = s.repo.Update(ctx, payment)
	if err != nil {
		return false, err
	}

	details := fmt.Sprintf("Refund of $%s processed via %s - Refund: %s",
		payment.Amount.StringFixed(2), adapter.Name(), refundID)
	s.subject.Notify(payment.BookingID, domain.EventCancelled, email, phone, details)

	s.logger.Info("payment refunded", "payment_id", paymentID, "refund_id", refundID)

	return true, nil
}

// VerifyPayment asks the original gateway for the coarse status of the
// payment's transaction id.
func (s *PaymentService) VerifyPayment(ctx context.Context, paymentID string) (string, error) {
	payment, err := s.repo.GetById(ctx, paymentID)
	if err != nil {
		return "", err
	}

	adapter, err := s.registry.Resolve(payment.Method)
	if err != nil {
		return "", err
	}

	return adapter.VerifyPaymentStatus(payment.TransactionID), nil
}

func (s *PaymentService) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	return s.repo.GetById(ctx, paymentID)
}

func (s *PaymentService) GetPaymentByBookingId(ctx context.Context, bookingID string) (*domain.Payment, error) {
	return s.repo.GetByBookingId(ctx, bookingID)
}

// PaymentStatistics aggregates the processed payments.
type PaymentStatistics struct {
	Total     int
	Completed int
	Failed    int
	Refunded  int
	Revenue   decimal.Decimal
}

func (s *PaymentService) Statistics(ctx context.Context) (*PaymentStatistics, error) {
	payments, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &PaymentStatistics{Revenue: decimal.Zero}

	for _, payment := range payments {
		stats.Total++

		switch payment.Status {
		case domain.PaymentStatusCompleted:
			stats.Completed++
			stats.Revenue = stats.Revenue.Add(payment.Amount)
		case domain.PaymentStatusFailed:
			stats.Failed++
		case domain.PaymentStatusRefunded:
			stats.Refunded++
		}
	}

	return stats, nil
}
