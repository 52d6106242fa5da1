package gateway

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/metinatakli/cinema-booking-engine/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	cashName = "Cash"

	cashProcessDelay = 200 * time.Millisecond
	cashRefundDelay  = 300 * time.Millisecond

	receiptTimeLayout = "20060102-150405"
)

var ErrInsufficientCash = errors.New("amount paid is less than amount due")

// CashAdapter simulates payment at the cinema counter. Amounts are
// unbounded and a confirmed cash payment always succeeds. Receipts are
// CASH-<yyyyMMdd-HHmmss>-<4 uppercase hex>, refunds
// REFUND-<yyyyMMdd-HHmmss>-<4 uppercase hex>.
type CashAdapter struct {
	sim *sim
}

func NewCashAdapter(opts ...Option) *CashAdapter {
	return &CashAdapter{sim: newSim(opts)}
}

func (a *CashAdapter) ProcessPayment(ctx context.Context, payment *domain.Payment) bool {
	payment.Status = domain.PaymentStatusProcessing

	if err := a.sim.sleep(ctx, cashProcessDelay); err != nil {
		payment.Status = domain.PaymentStatusFailed
		return false
	}

	payment.TransactionID = "CASH-" + a.sim.now().Format(receiptTimeLayout) + "-" + randomHexUpper(4)
	payment.Status = domain.PaymentStatusCompleted

	return true
}

func (a *CashAdapter) RefundPayment(ctx context.Context, payment *domain.Payment) (string, bool) {
	if payment.Status != domain.PaymentStatusCompleted {
		return "", false
	}

	if err := a.sim.sleep(ctx, cashRefundDelay); err != nil {
		return "", false
	}

	refundID := "REFUND-" + a.sim.now().Format(receiptTimeLayout) + "-" + randomHexUpper(4)
	payment.Status = domain.PaymentStatusRefunded

	return refundID, true
}

func (a *CashAdapter) VerifyPaymentStatus(transactionID string) string {
	switch {
	case strings.HasPrefix(transactionID, "CASH-"):
		return "VERIFIED"
	case strings.HasPrefix(transactionID, "REFUND-"):
		return "REFUNDED"
	default:
		return "INVALID"
	}
}

func (a *CashAdapter) Name() string { return cashName }

// Change returns the change owed on an over-payment at the counter.
func (a *CashAdapter) Change(paid, due decimal.Decimal) (decimal.Decimal, error) {
	if paid.LessThan(due) {
		return decimal.Zero, ErrInsufficientCash
	}

	return paid.Sub(due), nil
}
