package app

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessPaymentHandler(t *testing.T) {
	app := newTestApplication(t)
	routes := app.routes()

	createBooking := func(t *testing.T) string {
		rr := doRequest(t, routes, http.MethodPost, "/bookings", validCreateBookingRequest())
		require.Equal(t, http.StatusCreated, rr.Code)

		return decodeResponse[CreateBookingResponse](t, rr).BookingID
	}

	paymentBody := func(method string) map[string]any {
		return map[string]any{
			"amount":        "20.00",
			"paymentMethod": method,
			"customerEmail": "alice@example.com",
			"customerPhone": "+15550100",
		}
	}

	t.Run("successful payment confirms the booking", func(t *testing.T) {
		bookingID := createBooking(t)

		rr := doRequest(t, routes, http.MethodPost, "/bookings/"+bookingID+"/payment", paymentBody("CASH"))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, decodeResponse[ProcessPaymentResponse](t, rr).Success)

		got := doRequest(t, routes, http.MethodGet, "/bookings/"+bookingID, nil)
		assert.Equal(t, "CONFIRMED", decodeResponse[BookingResponse](t, got).Status)
	})

	t.Run("declined payment reports failure", func(t *testing.T) {
		bookingID := createBooking(t)

		rr := doRequest(t, routes, http.MethodPost, "/bookings/"+bookingID+"/payment", paymentBody("STRIPE"))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.False(t, decodeResponse[ProcessPaymentResponse](t, rr).Success)

		got := doRequest(t, routes, http.MethodGet, "/bookings/"+bookingID, nil)
		assert.Equal(t, "PENDING", decodeResponse[BookingResponse](t, got).Status)
	})

	t.Run("unknown booking returns 404", func(t *testing.T) {
		rr := doRequest(t, routes, http.MethodPost, "/bookings/BK-MISSING3/payment", paymentBody("CASH"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("missing amount returns 422", func(t *testing.T) {
		bookingID := createBooking(t)
		body := paymentBody("CASH")
		delete(body, "amount")

		rr := doRequest(t, routes, http.MethodPost, "/bookings/"+bookingID+"/payment", body)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}

func TestPaymentStatisticsHandler(t *testing.T) {
	app := newTestApplication(t)
	routes := app.routes()

	t.Run("empty statistics", func(t *testing.T) {
		rr := doRequest(t, routes, http.MethodGet, "/payments/statistics", nil)

		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeResponse[PaymentStatisticsResponse](t, rr)
		assert.Zero(t, resp.Total)
		assert.Equal(t, "0.00", resp.Revenue)
	})

	t.Run("reflects processed payments", func(t *testing.T) {
		workflow := map[string]any{
			"customerName":  "Alice",
			"customerEmail": "alice@example.com",
			"customerPhone": "+15550100",
			"movieId":       1,
			"ticketType":    "REGULAR",
			"seatCount":     2,
			"showtime":      testShowtime,
			"paymentMethod": "CASH",
		}
		created := doRequest(t, routes, http.MethodPost, "/bookings/workflow", workflow)
		require.Equal(t, http.StatusOK, created.Code)
		require.True(t, decodeResponse[WorkflowResponse](t, created).Success)

		rr := doRequest(t, routes, http.MethodGet, "/payments/statistics", nil)

		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeResponse[PaymentStatisticsResponse](t, rr)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, 1, resp.Completed)
		assert.Equal(t, "20.00", resp.Revenue)
	})
}

func TestInventoryReportHandler(t *testing.T) {
	app := newTestApplication(t)
	routes := app.routes()

	created := doRequest(t, routes, http.MethodPost, "/bookings", validCreateBookingRequest())
	require.Equal(t, http.StatusCreated, created.Code)

	rr := doRequest(t, routes, http.MethodGet, "/inventory", nil)

	require.Equal(t, http.StatusOK, rr.Code)

	resp := decodeResponse[InventoryReportResponse](t, rr)
	assert.Equal(t, int64(1), resp.BookingsCreated)
	assert.Equal(t, int64(2), resp.SeatsReserved)
	assert.Equal(t, int64(2), resp.NetReserved)
}
