package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseTickets(t *testing.T) {
	tests := []struct {
		name            string
		ticketType      TicketType
		wantPrice       string
		wantDescription string
	}{
		{
			name:            "regular ticket has base price 10",
			ticketType:      TicketTypeRegular,
			wantPrice:       "10.00",
			wantDescription: "Regular Ticket",
		},
		{
			name:            "VIP ticket has base price 20",
			ticketType:      TicketTypeVIP,
			wantPrice:       "20.00",
			wantDescription: "VIP Ticket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := NewTicket(tt.ticketType)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPrice, ticket.Price().StringFixed(2))
			assert.Equal(t, tt.wantDescription, ticket.Description())
		})
	}
}

func TestNewTicket_UnknownType(t *testing.T) {
	_, err := NewTicket(TicketType("IMAX"))

	assert.ErrorContains(t, err, "unknown ticket type")
}

func TestTicketExtras_PriceIsAdditiveRegardlessOfWrapOrder(t *testing.T) {
	snacksThenGlasses := With3DGlasses(WithSnackCombo(RegularTicket{}))
	glassesThenSnacks := WithSnackCombo(With3DGlasses(RegularTicket{}))

	want := decimal.RequireFromString("25.00")

	assert.True(t, snacksThenGlasses.Price().Equal(want),
		"got %s", snacksThenGlasses.Price())
	assert.True(t, glassesThenSnacks.Price().Equal(want),
		"got %s", glassesThenSnacks.Price())
}

func TestTicketExtras_DescriptionReflectsWrapOrder(t *testing.T) {
	ticket := With3DGlasses(WithSnackCombo(VIPTicket{}))

	assert.Equal(t, "VIP Ticket + Snack Combo (Popcorn + Drink) + 3D Glasses", ticket.Description())
}

func TestTicketExtras_DoNotMutateInnerTicket(t *testing.T) {
	base := RegularTicket{}
	_ = With3DGlasses(base)

	assert.Equal(t, "10.00", base.Price().StringFixed(2))
	assert.Equal(t, "Regular Ticket", base.Description())
}
