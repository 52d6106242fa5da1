// Package service contains the lifecycle services for bookings and
// payments and the workflow that composes them with compensating actions.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-booking-engine/internal/domain"
	"github.com/metinatakli/cinema-booking-engine/internal/event"
	"github.com/shopspring/decimal"
)

// BookingService owns the booking lifecycle: created, then confirmed or
// cancelled. State changes are broadcast through the event subject.
type BookingService struct {
	repo    domain.BookingRepository
	subject *event.Subject
	logger  *slog.Logger
}

func NewBookingService(repo domain.BookingRepository, subject *event.Subject, logger *slog.Logger) *BookingService {
	return &BookingService{
		repo:    repo,
		subject: subject,
		logger:  logger,
	}
}

func newBookingID() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:8])
}

// CreateBooking stores the booking summary under a fresh id and emits
// EventCreated.
func (s *BookingService) CreateBooking(
	ctx context.Context,
	email, phone, movieTitle string,
	seatCount int,
	totalAmount decimal.Decimal,
) (string, error) {

	booking := &domain.BookingSummary{
		ID:            newBookingID(),
		CustomerEmail: email,
		CustomerPhone: phone,
		MovieTitle:    movieTitle,
		SeatCount:     seatCount,
		TotalAmount:   totalAmount,
		Status:        domain.BookingStatusPending,
		CreatedAt:     time.Now(),
	}

	err := s.repo.Insert(ctx, booking)
	if err != nil {
		return "", err
	}

	details := fmt.Sprintf("Movie: %s, Seats: %d, Amount: $%s",
		movieTitle, seatCount, totalAmount.StringFixed(2))
	s.subject.Notify(booking.ID, domain.EventCreated, email, phone, details)

	s.logger.Info("booking created", "booking_id", booking.ID, "movie", movieTitle)

	return booking.ID, nil
}

// ConfirmBooking flips the booking to confirmed and emits EventConfirmed.
// Confirming an already confirmed booking succeeds without re-emitting.
func (s *BookingService) ConfirmBooking(ctx context.Context, bookingID string) error {
	booking, err := s.repo.GetById(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status == domain.BookingStatusConfirmed {
		s.logger.Info("booking already confirmed", "booking_id", bookingID)
		return nil
	}

	err = s.repo.UpdateStatus(ctx, bookingID, domain.BookingStatusConfirmed)
	if err != nil {
		return err
	}

	details := fmt.Sprintf("Movie: %s, Seats: %d, Total: $%s - confirmed",
		booking.MovieTitle, booking.SeatCount, booking.TotalAmount.StringFixed(2))
	s.subject.Notify(bookingID, domain.EventConfirmed, booking.CustomerEmail, booking.CustomerPhone, details)

	s.logger.Info("booking confirmed", "booking_id", bookingID)

	return nil
}

// CancelBooking flips the booking to cancelled and emits EventCancelled
// followed by EventSeatsReleased. Cancelling an already cancelled booking
// succeeds without re-emitting.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID string) error {
	booking, err := s.repo.GetById(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status == domain.BookingStatusCancelled {
		s.logger.Info("booking already cancelled", "booking_id", bookingID)
		return nil
	}

	err = s.repo.UpdateStatus(ctx, bookingID, domain.BookingStatusCancelled)
	if err != nil {
		return err
	}

	details := fmt.Sprintf("Booking cancelled. Refund: $%s", booking.TotalAmount.StringFixed(2))
	s.subject.Notify(bookingID, domain.EventCancelled, booking.CustomerEmail, booking.CustomerPhone, details)

	released := fmt.Sprintf("%d seats released", booking.SeatCount)
	s.subject.Notify(bookingID, domain.EventSeatsReleased, booking.CustomerEmail, booking.CustomerPhone, released)

	s.logger.Info("booking cancelled", "booking_id", bookingID)

	return nil
}

// ReserveSeats emits EventSeatsReserved for the booking. It is purely
// informational fanout and changes no stored state.
func (s *BookingService) ReserveSeats(ctx context.Context, bookingID string) error {
	booking, err := s.repo.GetById(ctx, bookingID)
	if err != nil {
		return err
	}

	details := fmt.Sprintf("%d seats reserved for %s", booking.SeatCount, booking.MovieTitle)
	s.subject.Notify(bookingID, domain.EventSeatsReserved, booking.CustomerEmail, booking.CustomerPhone, details)

	return nil
}

func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*domain.BookingSummary, error) {
	return s.repo.GetById(ctx, bookingID)
}

func (s *BookingService) GetAllBookings(ctx context.Context) ([]*domain.BookingSummary, error) {
	return s.repo.GetAll(ctx)
}
