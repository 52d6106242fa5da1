package gateway

import (
	"context"
	"strings"
	"time"

	"github.com/metinatakli/cinema-booking-engine/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	paypalName        = "PayPal"
	paypalSuccessRate = 0.92

	paypalOrderDelay     = 300 * time.Millisecond
	paypalAuthorizeDelay = 400 * time.Millisecond
	paypalCaptureDelay   = 300 * time.Millisecond
	paypalRefundDelay    = 400 * time.Millisecond
)

var (
	paypalMinAmount = decimal.RequireFromString("1.00")
	paypalMaxAmount = decimal.RequireFromString("10000.00")
)

// PayPalAdapter simulates the PayPal order/authorize/capture flow.
// Captures are CAPTURE-<13 uppercase hex>, refunds REFUND-<13 uppercase hex>.
type PayPalAdapter struct {
	sim *sim
}

func NewPayPalAdapter(opts ...Option) *PayPalAdapter {
	return &PayPalAdapter{sim: newSim(opts)}
}

func (a *PayPalAdapter) ProcessPayment(ctx context.Context, payment *domain.Payment) bool {
	if payment.Amount.LessThan(paypalMinAmount) || payment.Amount.GreaterThan(paypalMaxAmount) {
		payment.Status = domain.PaymentStatusFailed
		return false
	}

	payment.Status = domain.PaymentStatusProcessing

	// Order creation and authorization happen before the approval draw;
	// the capture id is only assigned once the payment is approved.
	if err := a.sim.sleep(ctx, paypalOrderDelay); err != nil {
		payment.Status = domain.PaymentStatusFailed
		return false
	}

	orderID := "PAYPAL-" + randomHexUpper(17)
	a.sim.logger.Info("paypal order created",
		"order_id", orderID,
		"payment_id", payment.ID,
	)

	if err := a.sim.sleep(ctx, paypalAuthorizeDelay); err != nil {
		payment.Status = domain.PaymentStatusFailed
		return false
	}

	if !a.sim.succeeds(paypalSuccessRate) {
		payment.Status = domain.PaymentStatusFailed
		return false
	}

	if err := a.sim.sleep(ctx, paypalCaptureDelay); err != nil {
		payment.Status = domain.PaymentStatusFailed
		return false
	}

	payment.TransactionID = "CAPTURE-" + randomHexUpper(13)
	payment.Status = domain.PaymentStatusCompleted

	return true
}

func (a *PayPalAdapter) RefundPayment(ctx context.Context, payment *domain.Payment) (string, bool) {
	if payment.Status != domain.PaymentStatusCompleted {
		return "", false
	}

	if err := a.sim.sleep(ctx, paypalRefundDelay); err != nil {
		return "", false
	}

	refundID := "REFUND-" + randomHexUpper(13)
	payment.Status = domain.PaymentStatusRefunded

	return refundID, true
}

func (a *PayPalAdapter) VerifyPaymentStatus(transactionID string) string {
	switch {
	case strings.HasPrefix(transactionID, "CAPTURE-"):
		return "COMPLETED"
	case strings.HasPrefix(transactionID, "REFUND-"):
		return "REFUNDED"
	default:
		return "NOT_FOUND"
	}
}

func (a *PayPalAdapter) Name() string { return paypalName }

// BuyerProtectionEligible reports whether a payment qualifies for buyer
// protection; payments under $10,000 do.
func (a *PayPalAdapter) BuyerProtectionEligible(amount decimal.Decimal) bool {
	return amount.LessThan(paypalMaxAmount)
}

// SupportsPayLater reports whether the gateway offers the Pay Later
// installment option.
func (a *PayPalAdapter) SupportsPayLater() bool {
	return true
}
