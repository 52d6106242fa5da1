// Package event implements the booking event bus: a subject that fans
// lifecycle events out to attached observers, and the observer
// implementations shipped with the engine.
package event

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/metinatakli/cinema-booking-engine/internal/domain"
)

// Event is a booking lifecycle notification delivered to observers.
type Event struct {
	BookingID     string
	Type          domain.BookingEventType
	CustomerEmail string
	CustomerPhone string
	Details       string
	At            time.Time
}

// Observer receives booking events. Update runs synchronously on the
// emitter's goroutine and must not call back into the emitting service.
type Observer interface {
	Update(e Event)
}

// Subject maintains the observer list and delivers events to every
// attached observer in attachment order.
type Subject struct {
	mu        sync.Mutex
	observers []Observer
	logger    *slog.Logger
}

func NewSubject(logger *slog.Logger) *Subject {
	return &Subject{logger: logger}
}

// Attach adds an observer. Attaching an observer that is already attached
// is a no-op, so each observer receives at most one delivery per event.
func (s *Subject) Attach(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, attached := range s.observers {
		if attached == o {
			return
		}
	}

	s.observers = append(s.observers, o)
}

// Detach removes an observer. Detaching during an in-progress notification
// only affects subsequent Notify calls, never the one in flight.
func (s *Subject) Detach(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, attached := range s.observers {
		if attached == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *Subject) ObserverCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.observers)
}

// Notify delivers the event synchronously to every currently attached
// observer. The observer list is snapshotted before delivery so the lock is
// not held while observers run.
func (s *Subject) Notify(bookingID string, eventType domain.BookingEventType, email, phone, details string) {
	e := Event{
		BookingID:     bookingID,
		Type:          eventType,
		CustomerEmail: email,
		CustomerPhone: phone,
		Details:       details,
		At:            time.Now(),
	}

	s.mu.Lock()
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, o := range observers {
		s.deliver(o, e)
	}
}

// deliver isolates observer panics so one misbehaving observer cannot stop
// delivery to the rest or propagate to the emitter.
func (s *Subject) deliver(o Observer, e Event) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("observer panicked during event delivery",
				"event", string(e.Type),
				"booking_id", e.BookingID,
				"panic", fmt.Sprint(r),
			)
		}
	}()

	o.Update(e)
}
