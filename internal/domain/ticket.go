package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type TicketType string

const (
	TicketTypeRegular TicketType = "REGULAR"
	TicketTypeVIP     TicketType = "VIP"
)

// Ticket prices a single admission. Extras wrap a Ticket and add their
// surcharge on top, so Price is always the sum of the whole chain.
type Ticket interface {
	Price() decimal.Decimal
	Description() string
}

type RegularTicket struct{}

func (RegularTicket) Price() decimal.Decimal {
	return decimal.NewFromInt(10)
}

func (RegularTicket) Description() string {
	return "Regular Ticket"
}

type VIPTicket struct{}

func (VIPTicket) Price() decimal.Decimal {
	return decimal.NewFromInt(20)
}

func (VIPTicket) Description() string {
	return "VIP Ticket"
}

// TicketExtra is an add-on layered over another ticket. Extras nest, each
// layer contributing its surcharge and appending its label.
type TicketExtra struct {
	inner     Ticket
	surcharge decimal.Decimal
	label     string
}

func (e TicketExtra) Price() decimal.Decimal {
	return e.inner.Price().Add(e.surcharge)
}

func (e TicketExtra) Description() string {
	return e.inner.Description() + " + " + e.label
}

func With3DGlasses(t Ticket) Ticket {
	return TicketExtra{inner: t, surcharge: decimal.NewFromInt(5), label: "3D Glasses"}
}

func WithSnackCombo(t Ticket) Ticket {
	return TicketExtra{inner: t, surcharge: decimal.NewFromInt(10), label: "Snack Combo (Popcorn + Drink)"}
}

var ticketConstructors = map[TicketType]func() Ticket{
	TicketTypeRegular: func() Ticket { return RegularTicket{} },
	TicketTypeVIP:     func() Ticket { return VIPTicket{} },
}

// NewTicket builds a base ticket for the given type. New ticket kinds only
// need an entry in ticketConstructors.
func NewTicket(ticketType TicketType) (Ticket, error) {
	constructor, ok := ticketConstructors[ticketType]
	if !ok {
		return nil, fmt.Errorf("unknown ticket type: %s", ticketType)
	}

	return constructor(), nil
}
