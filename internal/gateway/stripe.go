package gateway

import (
	"context"
	"strings"
	"time"

	"github.com/metinatakli/cinema-booking-engine/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	stripeName        = "Stripe"
	stripeAPIVersion  = "2024-11-20.acacia"
	stripeSuccessRate = 0.95

	stripeProcessDelay = 500 * time.Millisecond
	stripeRefundDelay  = 300 * time.Millisecond
)

var (
	stripeMinAmount = decimal.RequireFromString("0.50")
	stripeMaxAmount = decimal.RequireFromString("999999.99")

	threeDSecureThreshold = decimal.RequireFromString("500.00")
)

// StripeAdapter simulates card payments with Stripe's transaction id
// format: payment intents pi_<24 lowercase hex>, refunds re_<24 lowercase hex>.
type StripeAdapter struct {
	sim *sim
}

func NewStripeAdapter(opts ...Option) *StripeAdapter {
	return &StripeAdapter{sim: newSim(opts)}
}

func (a *StripeAdapter) ProcessPayment(ctx context.Context, payment *domain.Payment) bool {
	if payment.Amount.LessThan(stripeMinAmount) || payment.Amount.GreaterThan(stripeMaxAmount) {
		payment.Status = domain.PaymentStatusFailed
		return false
	}

	payment.Status = domain.PaymentStatusProcessing

	if err := a.sim.sleep(ctx, stripeProcessDelay); err != nil {
		payment.Status = domain.PaymentStatusFailed
		return false
	}

	payment.TransactionID = "pi_" + randomHex(24)

	if !a.sim.succeeds(stripeSuccessRate) {
		payment.Status = domain.PaymentStatusFailed
		return false
	}

	payment.Status = domain.PaymentStatusCompleted

	return true
}

func (a *StripeAdapter) RefundPayment(ctx context.Context, payment *domain.Payment) (string, bool) {
	if payment.Status != domain.PaymentStatusCompleted {
		return "", false
	}

	if err := a.sim.sleep(ctx, stripeRefundDelay); err != nil {
		return "", false
	}

	refundID := "re_" + randomHex(24)
	payment.Status = domain.PaymentStatusRefunded

	return refundID, true
}

func (a *StripeAdapter) VerifyPaymentStatus(transactionID string) string {
	if strings.HasPrefix(transactionID, "pi_") {
		return "VERIFIED"
	}

	return "INVALID"
}

func (a *StripeAdapter) Name() string { return stripeName }

// Requires3DSecure reports whether an amount would trigger a 3D Secure
// challenge; amounts over $500 do.
func (a *StripeAdapter) Requires3DSecure(amount decimal.Decimal) bool {
	return amount.GreaterThan(threeDSecureThreshold)
}

// APIVersion returns the simulated Stripe API version.
func (a *StripeAdapter) APIVersion() string {
	return stripeAPIVersion
}
