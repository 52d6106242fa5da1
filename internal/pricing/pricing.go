// Package pricing holds the time-dependent pricing strategies and the
// priority rule that selects exactly one of them per booking.
package pricing

import (
	"time"

	"github.com/metinatakli/cinema-booking-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// Strategy maps a ticket list and a showtime to a total price. Strategies
// are stateless and safe for concurrent use.
type Strategy interface {
	Total(tickets []domain.Ticket, showtime time.Time) decimal.Decimal
	Name() string
}

const matineeCutoffHour = 17

var (
	holidayRate = decimal.RequireFromString("1.25")
	weekendRate = decimal.RequireFromString("1.15")
	matineeRate = decimal.RequireFromString("0.80")
)

func baseTotal(tickets []domain.Ticket) decimal.Decimal {
	total := decimal.Zero
	for _, t := range tickets {
		total = total.Add(t.Price())
	}

	return total
}

// HolidayStrategy applies a 25% surcharge when the showtime's date is in
// the configured holiday set. An empty set never matches.
type HolidayStrategy struct {
	holidays map[string]struct{}
}

func NewHolidayStrategy(holidays []time.Time) *HolidayStrategy {
	s := &HolidayStrategy{holidays: make(map[string]struct{}, len(holidays))}
	for _, day := range holidays {
		s.holidays[day.Format(time.DateOnly)] = struct{}{}
	}

	return s
}

func (s *HolidayStrategy) Matches(showtime time.Time) bool {
	_, ok := s.holidays[showtime.Format(time.DateOnly)]
	return ok
}

func (s *HolidayStrategy) Total(tickets []domain.Ticket, showtime time.Time) decimal.Decimal {
	total := baseTotal(tickets)
	if s.Matches(showtime) {
		return total.Mul(holidayRate)
	}

	return total
}

func (s *HolidayStrategy) Name() string { return "holiday" }

// WeekendStrategy applies a 15% surcharge on Saturdays and Sundays.
type WeekendStrategy struct{}

func (WeekendStrategy) Total(tickets []domain.Ticket, showtime time.Time) decimal.Decimal {
	total := baseTotal(tickets)
	if isWeekend(showtime) {
		return total.Mul(weekendRate)
	}

	return total
}

func (WeekendStrategy) Name() string { return "weekend" }

// MatineeStrategy applies a 20% discount to shows starting strictly before
// 17:00 local time.
type MatineeStrategy struct{}

func (MatineeStrategy) Total(tickets []domain.Ticket, showtime time.Time) decimal.Decimal {
	total := baseTotal(tickets)
	if showtime.Hour() < matineeCutoffHour {
		return total.Mul(matineeRate)
	}

	return total
}

func (MatineeStrategy) Name() string { return "matinee" }

// StandardStrategy charges the plain sum of ticket prices.
type StandardStrategy struct{}

func (StandardStrategy) Total(tickets []domain.Ticket, _ time.Time) decimal.Decimal {
	return baseTotal(tickets)
}

func (StandardStrategy) Name() string { return "standard" }

func isWeekend(t time.Time) bool {
	day := t.Weekday()
	return day == time.Saturday || day == time.Sunday
}

// Selector picks one strategy per showtime with strict priority:
// holiday, then weekend, then matinee, then standard.
type Selector struct {
	holiday  *HolidayStrategy
	weekend  WeekendStrategy
	matinee  MatineeStrategy
	standard StandardStrategy
}

func NewSelector(holidays []time.Time) *Selector {
	return &Selector{holiday: NewHolidayStrategy(holidays)}
}

func (s *Selector) Select(showtime time.Time) Strategy {
	if s.holiday.Matches(showtime) {
		return s.holiday
	}

	if isWeekend(showtime) {
		return s.weekend
	}

	if showtime.Hour() < matineeCutoffHour {
		return s.matinee
	}

	return s.standard
}
