// Package gateway contains the uniform payment-gateway contract and the
// simulated backends behind it. Adapters never perform network I/O; latency
// and success rates are simulated through injectable sources so tests stay
// deterministic.
package gateway

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-booking-engine/internal/domain"
)

// Adapter is the uniform contract over a payment backend.
//
// ProcessPayment mutates the payment's status and transaction id and reports
// the outcome as a boolean. RefundPayment requires a Completed payment and
// returns the refund identifier on success. VerifyPaymentStatus is a pure
// lookup keyed on the transaction id's shape.
type Adapter interface {
	ProcessPayment(ctx context.Context, payment *domain.Payment) bool
	RefundPayment(ctx context.Context, payment *domain.Payment) (string, bool)
	VerifyPaymentStatus(transactionID string) string
	Name() string
}

// sim bundles the injectable sources backing every simulated behavior:
// the success draw, the clock, and the latency wait.
type sim struct {
	mu     sync.Mutex
	draw   func() float64
	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
	logger *slog.Logger
}

func newSim(opts []Option) *sim {
	source := rand.New(rand.NewSource(time.Now().UnixNano()))

	s := &sim{
		draw:   source.Float64,
		now:    time.Now,
		sleep:  sleepContext,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// succeeds draws once against the gateway's success rate. The draw is
// serialized because math/rand sources are not goroutine-safe.
func (s *sim) succeeds(rate float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.draw() < rate
}

type Option func(*sim)

// WithRand replaces the success-draw source, typically with a seeded one.
func WithRand(r *rand.Rand) Option {
	return func(s *sim) { s.draw = r.Float64 }
}

// WithDraw fixes the success draw outright. A draw of 0 forces success,
// a draw of 1 forces failure.
func WithDraw(draw func() float64) Option {
	return func(s *sim) { s.draw = draw }
}

func WithClock(now func() time.Time) Option {
	return func(s *sim) { s.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *sim) { s.logger = logger }
}

// WithSleep replaces the latency wait; tests pass a no-op to skip delays.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(s *sim) { s.sleep = sleep }
}

// sleepContext blocks for d or until the context is done, whichever comes
// first. A non-nil return means the wait was cut short and the operation
// must resolve as failed.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func randomHex(n int) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	for len(hex) < n {
		hex += strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	return hex[:n]
}

func randomHexUpper(n int) string {
	return strings.ToUpper(randomHex(n))
}
