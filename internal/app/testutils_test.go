package app

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/cinema-booking-engine/internal/event"
	"github.com/metinatakli/cinema-booking-engine/internal/gateway"
	"github.com/metinatakli/cinema-booking-engine/internal/mailer"
	"github.com/metinatakli/cinema-booking-engine/internal/pricing"
	"github.com/metinatakli/cinema-booking-engine/internal/repository"
	"github.com/metinatakli/cinema-booking-engine/internal/service"
	appvalidator "github.com/metinatakli/cinema-booking-engine/internal/validator"
	"github.com/stretchr/testify/require"
)

// newTestApplication builds a fully wired application over in-memory
// storage. The CASH gateway always approves and the STRIPE gateway always
// declines, so handlers can exercise both payment outcomes deterministically.
func newTestApplication(t *testing.T) *application {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	noDelay := func(ctx context.Context, d time.Duration) error { return nil }

	registry := gateway.NewRegistry()
	registry.Register("CASH", gateway.NewCashAdapter(gateway.WithSleep(noDelay)))
	registry.Register("STRIPE", gateway.NewStripeAdapter(
		gateway.WithDraw(func() float64 { return 1 }),
		gateway.WithSleep(noDelay),
	))

	mockMailer := mailer.NewMockMailer()

	subject := event.NewSubject(logger)
	inventory := event.NewInventoryObserver(repository.NewInMemoryInventoryStore(), logger)

	subject.Attach(event.NewEmailObserver(mockMailer, logger))
	subject.Attach(inventory)

	movieRepo := repository.NewInMemoryMovieRepository(repository.SeedMovies()...)

	bookings := service.NewBookingService(repository.NewInMemoryBookingRepository(), subject, logger)
	payments := service.NewPaymentService(registry, repository.NewInMemoryPaymentRepository(), subject, logger)
	workflow := service.NewWorkflow(movieRepo, bookings, payments, pricing.NewSelector(nil), logger)

	return &application{
		config:    config{env: "test"},
		logger:    logger,
		validator: appvalidator.NewValidator(),
		mailer:    mockMailer,
		movieRepo: movieRepo,
		subject:   subject,
		inventory: inventory,
		bookings:  bookings,
		payments:  payments,
		workflow:  workflow,
	}
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		js, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(js)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	return rr
}

func decodeResponse[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))

	return out
}
