package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/metinatakli/cinema-booking-engine/internal/booking"
	"github.com/metinatakli/cinema-booking-engine/internal/domain"
	"github.com/metinatakli/cinema-booking-engine/internal/pricing"
	"github.com/shopspring/decimal"
)

// BookTicketsParams carries everything needed to assemble a booking.
type BookTicketsParams struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	MovieID       int
	TicketType    domain.TicketType
	SeatRows      []int
	SeatNumbers   []int
	Showtime      time.Time
	Add3DGlasses  bool
	AddSnackCombo bool
}

// CompleteBookingParams is the single-call workflow variant: seats are
// assigned automatically in row 1.
type CompleteBookingParams struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	MovieID       int
	TicketType    domain.TicketType
	SeatCount     int
	Showtime      time.Time
	Add3DGlasses  bool
	AddSnackCombo bool
	PaymentMethod string
}

// Result is the outcome of the complete booking workflow. BookingID is kept
// even on failure so the caller can inspect the partially created state.
type Result struct {
	Success   bool
	BookingID string
	Message   string
}

// Workflow sequences ticket assembly, booking creation, payment, and
// confirmation, cancelling the booking when payment fails.
type Workflow struct {
	movies   domain.MovieRepository
	bookings *BookingService
	payments *PaymentService
	pricing  *pricing.Selector
	logger   *slog.Logger
}

func NewWorkflow(
	movies domain.MovieRepository,
	bookings *BookingService,
	payments *PaymentService,
	selector *pricing.Selector,
	logger *slog.Logger,
) *Workflow {

	return &Workflow{
		movies:   movies,
		bookings: bookings,
		payments: payments,
		pricing:  selector,
		logger:   logger,
	}
}

// BookTickets assembles tickets and seats, prices them under the selected
// strategy, builds the booking, and registers it with the booking service.
// An unresolvable movie aborts before any state is created.
func (w *Workflow) BookTickets(ctx context.Context, p BookTicketsParams) (string, error) {
	movie, err := w.movies.GetById(ctx, p.MovieID)
	if err != nil {
		return "", err
	}

	seatCount := len(p.SeatRows)
	if seatCount == 0 || len(p.SeatNumbers) != seatCount {
		return "", &domain.ValidationError{Field: "seats", Reason: "seat rows and numbers must be non-empty and of equal length"}
	}

	builder := booking.NewBuilder().
		SetCustomer(&domain.Customer{Name: p.CustomerName, Email: p.CustomerEmail, Phone: p.CustomerPhone}).
		SetShowtime(p.Showtime)

	seatType := domain.SeatTypeStandard
	if p.TicketType == domain.TicketTypeVIP {
		seatType = domain.SeatTypeVIP
	}

	for i := 0; i < seatCount; i++ {
		ticket, err := domain.NewTicket(p.TicketType)
		if err != nil {
			return "", err
		}

		if p.Add3DGlasses {
			ticket = domain.With3DGlasses(ticket)
		}
		if p.AddSnackCombo {
			ticket = domain.WithSnackCombo(ticket)
		}

		seat, err := domain.NewSeat(p.SeatRows[i], p.SeatNumbers[i], seatType, true)
		if err != nil {
			return "", err
		}

		builder.AddTicket(ticket).AddSeat(seat)
	}

	strategy := w.pricing.Select(p.Showtime)

	err = builder.CalculateTotal(strategy)
	if err != nil {
		return "", err
	}

	built, err := builder.Build()
	if err != nil {
		return "", err
	}

	w.logger.Info("booking assembled",
		"movie", movie.Title,
		"seats", seatCount,
		"pricing", strategy.Name(),
		"total", built.TotalPrice().StringFixed(2),
	)

	bookingID, err := w.bookings.CreateBooking(ctx,
		p.CustomerEmail, p.CustomerPhone, movie.Title, seatCount, built.TotalPrice())
	if err != nil {
		return "", err
	}

	err = w.bookings.ReserveSeats(ctx, bookingID)
	if err != nil {
		w.logger.Warn("seat reservation fanout failed", "booking_id", bookingID, "error", err.Error())
	}

	return bookingID, nil
}

// ProcessPayment charges the booking and confirms it on success.
func (w *Workflow) ProcessPayment(
	ctx context.Context,
	bookingID string,
	amount decimal.Decimal,
	method, email, phone string,
) (bool, error) {

	ok, err := w.payments.ProcessPayment(ctx, bookingID, amount, method, email, phone)
	if err != nil || !ok {
		return false, err
	}

	err = w.bookings.ConfirmBooking(ctx, bookingID)
	if err != nil {
		return true, err
	}

	return true, nil
}

// CancelBooking cancels a booking, first attempting a refund when a payment
// exists. A failed refund is logged and never blocks the cancellation.
func (w *Workflow) CancelBooking(ctx context.Context, bookingID, email, phone string) (bool, error) {
	payment, err := w.payments.GetPaymentByBookingId(ctx, bookingID)
	switch {
	case err == nil:
		refunded, refundErr := w.payments.RefundPayment(ctx, payment.ID, email, phone)
		if refundErr != nil || !refunded {
			w.logger.Warn("refund failed, cancelling booking anyway",
				"booking_id", bookingID,
				"payment_id", payment.ID,
			)
		}
	case errors.Is(err, domain.ErrPaymentNotFound):
		// Nothing to refund.
	default:
		return false, err
	}

	err = w.bookings.CancelBooking(ctx, bookingID)
	if err != nil {
		return false, err
	}

	return true, nil
}

// CompleteBookingWorkflow runs the whole booking and payment sequence.
// Payment failure triggers the compensating cancellation; the result keeps
// the booking id for visibility.
func (w *Workflow) CompleteBookingWorkflow(ctx context.Context, p CompleteBookingParams) Result {
	seatRows := make([]int, p.SeatCount)
	seatNumbers := make([]int, p.SeatCount)
	for i := 0; i < p.SeatCount; i++ {
		seatRows[i] = 1
		seatNumbers[i] = i + 1
	}

	bookingID, err := w.BookTickets(ctx, BookTicketsParams{
		CustomerName:  p.CustomerName,
		CustomerEmail: p.CustomerEmail,
		CustomerPhone: p.CustomerPhone,
		MovieID:       p.MovieID,
		TicketType:    p.TicketType,
		SeatRows:      seatRows,
		SeatNumbers:   seatNumbers,
		Showtime:      p.Showtime,
		Add3DGlasses:  p.Add3DGlasses,
		AddSnackCombo: p.AddSnackCombo,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return Result{Success: false, Message: "movie not found"}
		}

		return Result{Success: false, Message: "booking creation failed: " + err.Error()}
	}

	summary, err := w.bookings.GetBooking(ctx, bookingID)
	if err != nil {
		return Result{Success: false, BookingID: bookingID, Message: "booking data not found"}
	}

	paid, err := w.ProcessPayment(ctx, bookingID,
		summary.TotalAmount, p.PaymentMethod, p.CustomerEmail, p.CustomerPhone)
	if err != nil {
		w.logger.Error("payment processing error", "booking_id", bookingID, "error", err.Error())
	}

	if !paid {
		_, cancelErr := w.CancelBooking(ctx, bookingID, p.CustomerEmail, p.CustomerPhone)
		if cancelErr != nil {
			w.logger.Error("compensating cancellation failed",
				"booking_id", bookingID,
				"error", cancelErr.Error(),
			)
		}

		return Result{Success: false, BookingID: bookingID, Message: "payment failed - booking cancelled"}
	}

	// Payment went through but confirmation did not; the booking stays
	// pending and the caller must not be told it completed.
	if err != nil {
		return Result{Success: false, BookingID: bookingID, Message: "payment completed but booking confirmation failed"}
	}

	return Result{Success: true, BookingID: bookingID, Message: "booking completed successfully"}
}
