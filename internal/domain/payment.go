package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
	PaymentStatusRefunded   PaymentStatus = "REFUNDED"
	PaymentStatusCancelled  PaymentStatus = "CANCELLED"
)

type Payment struct {
	ID            string
	BookingID     string
	Amount        decimal.Decimal
	Method        string
	Status        PaymentStatus
	TransactionID string
	Timestamp     time.Time
}

func NewPayment(bookingID string, amount decimal.Decimal, method string) *Payment {
	return &Payment{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Amount:    amount,
		Method:    strings.ToUpper(method),
		Status:    PaymentStatusPending,
		Timestamp: time.Now(),
	}
}

type PaymentRepository interface {
	Insert(ctx context.Context, payment *Payment) error
	Update(ctx context.Context, payment *Payment) error
	GetById(ctx context.Context, id string) (*Payment, error)
	GetByBookingId(ctx context.Context, bookingID string) (*Payment, error)
	GetAll(ctx context.Context) ([]*Payment, error)
}
