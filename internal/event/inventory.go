package event

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/metinatakli/cinema-booking-engine/internal/domain"
)

// Counter names used by the inventory observer.
const (
	CounterSeatsReserved     = "seats_reserved"
	CounterSeatsReleased     = "seats_released"
	CounterBookingsCreated   = "bookings_created"
	CounterBookingsConfirmed = "bookings_confirmed"
	CounterBookingsCancelled = "bookings_cancelled"
)

// InventoryStore aggregates inventory counters. Implementations must be
// safe for concurrent use.
type InventoryStore interface {
	Add(ctx context.Context, counter string, delta int64) (int64, error)
	Get(ctx context.Context, counter string) (int64, error)
}

// InventoryObserver tracks seat and booking counts from the event stream.
// It only writes counters; it never calls back into the services that
// emitted the event.
type InventoryObserver struct {
	store  InventoryStore
	logger *slog.Logger
}

func NewInventoryObserver(store InventoryStore, logger *slog.Logger) *InventoryObserver {
	return &InventoryObserver{store: store, logger: logger}
}

func (o *InventoryObserver) Update(e Event) {
	ctx := context.Background()

	switch e.Type {
	case domain.EventCreated:
		o.add(ctx, CounterBookingsCreated, 1)
	case domain.EventConfirmed:
		o.add(ctx, CounterBookingsConfirmed, 1)
	case domain.EventCancelled:
		o.add(ctx, CounterBookingsCancelled, 1)
	case domain.EventSeatsReserved:
		o.add(ctx, CounterSeatsReserved, firstNumber(e.Details))
	case domain.EventSeatsReleased:
		o.add(ctx, CounterSeatsReleased, firstNumber(e.Details))
	}
}

func (o *InventoryObserver) add(ctx context.Context, counter string, delta int64) {
	if delta == 0 {
		return
	}

	if _, err := o.store.Add(ctx, counter, delta); err != nil {
		o.logger.Error("failed to update inventory counter",
			"counter", counter,
			"error", err.Error(),
		)
	}
}

// InventoryReport is a point-in-time snapshot of the tracked counters.
type InventoryReport struct {
	SeatsReserved     int64
	SeatsReleased     int64
	NetReserved       int64
	BookingsCreated   int64
	BookingsConfirmed int64
	BookingsCancelled int64
}

func (o *InventoryObserver) Report(ctx context.Context) (*InventoryReport, error) {
	report := &InventoryReport{}

	counters := []struct {
		name string
		dest *int64
	}{
		{CounterSeatsReserved, &report.SeatsReserved},
		{CounterSeatsReleased, &report.SeatsReleased},
		{CounterBookingsCreated, &report.BookingsCreated},
		{CounterBookingsConfirmed, &report.BookingsConfirmed},
		{CounterBookingsCancelled, &report.BookingsCancelled},
	}

	for _, c := range counters {
		value, err := o.store.Get(ctx, c.name)
		if err != nil {
			return nil, err
		}
		*c.dest = value
	}

	report.NetReserved = report.SeatsReserved - report.SeatsReleased

	return report, nil
}

// firstNumber extracts the leading integer from a details string such as
// "3 seats reserved for Avatar". Details without a count yield zero.
func firstNumber(details string) int64 {
	fields := strings.Fields(details)
	if len(fields) == 0 {
		return 0
	}

	n, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0
	}

	return n
}
