package app

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testShowtime = time.Date(2026, 9, 4, 19, 0, 0, 0, time.UTC)

func validCreateBookingRequest() map[string]any {
	return map[string]any{
		"customerName":  "Alice",
		"customerEmail": "alice@example.com",
		"customerPhone": "+15550100",
		"movieId":       1,
		"ticketType":    "REGULAR",
		"seatRows":      []int{1, 1},
		"seatNumbers":   []int{1, 2},
		"showtime":      testShowtime,
	}
}

func TestCreateBookingHandler(t *testing.T) {
	app := newTestApplication(t)
	routes := app.routes()

	t.Run("creates a booking", func(t *testing.T) {
		rr := doRequest(t, routes, http.MethodPost, "/bookings", validCreateBookingRequest())

		require.Equal(t, http.StatusCreated, rr.Code)

		resp := decodeResponse[CreateBookingResponse](t, rr)
		assert.Regexp(t, `^BK-[0-9A-F]{8}$`, resp.BookingID)
	})

	t.Run("unknown movie returns 404", func(t *testing.T) {
		body := validCreateBookingRequest()
		body["movieId"] = 404

		rr := doRequest(t, routes, http.MethodPost, "/bookings", body)

		require.Equal(t, http.StatusNotFound, rr.Code)

		resp := decodeResponse[ErrorResponse](t, rr)
		assert.Contains(t, resp.Message, "movie not found")
	})

	t.Run("invalid ticket type returns 422 with field errors", func(t *testing.T) {
		body := validCreateBookingRequest()
		body["ticketType"] = "IMAX"

		rr := doRequest(t, routes, http.MethodPost, "/bookings", body)

		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		resp := decodeResponse[ValidationErrorResponse](t, rr)
		require.Len(t, resp.ValidationErrors, 1)
		assert.Equal(t, "TicketType", resp.ValidationErrors[0].Field)
		assert.Equal(t, "must be one of REGULAR or VIP", resp.ValidationErrors[0].Issue)
	})

	t.Run("missing fields return 422", func(t *testing.T) {
		rr := doRequest(t, routes, http.MethodPost, "/bookings", map[string]any{
			"customerName": "Alice",
		})

		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		resp := decodeResponse[ValidationErrorResponse](t, rr)
		assert.NotEmpty(t, resp.ValidationErrors)
	})

	t.Run("mismatched seat lists return 422", func(t *testing.T) {
		body := validCreateBookingRequest()
		body["seatNumbers"] = []int{1}

		rr := doRequest(t, routes, http.MethodPost, "/bookings", body)

		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})

	t.Run("empty body returns 400", func(t *testing.T) {
		req := doRequest(t, routes, http.MethodPost, "/bookings", nil)

		assert.Equal(t, http.StatusBadRequest, req.Code)
	})

	t.Run("unknown body fields return 400", func(t *testing.T) {
		body := validCreateBookingRequest()
		body["surprise"] = true

		rr := doRequest(t, routes, http.MethodPost, "/bookings", body)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetBookingHandler(t *testing.T) {
	app := newTestApplication(t)
	routes := app.routes()

	t.Run("returns the booking", func(t *testing.T) {
		created := doRequest(t, routes, http.MethodPost, "/bookings", validCreateBookingRequest())
		require.Equal(t, http.StatusCreated, created.Code)
		bookingID := decodeResponse[CreateBookingResponse](t, created).BookingID

		rr := doRequest(t, routes, http.MethodGet, "/bookings/"+bookingID, nil)

		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeResponse[BookingResponse](t, rr)
		assert.Equal(t, bookingID, resp.BookingID)
		assert.Equal(t, "Avengers: Endgame", resp.MovieTitle)
		assert.Equal(t, 2, resp.SeatCount)
		assert.Equal(t, "20.00", resp.TotalAmount)
		assert.Equal(t, "PENDING", resp.Status)
	})

	t.Run("unknown booking returns 404", func(t *testing.T) {
		rr := doRequest(t, routes, http.MethodGet, "/bookings/BK-MISSING1", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCancelBookingHandler(t *testing.T) {
	app := newTestApplication(t)
	routes := app.routes()

	cancelBody := map[string]any{
		"customerEmail": "alice@example.com",
		"customerPhone": "+15550100",
	}

	t.Run("cancels an existing booking", func(t *testing.T) {
		created := doRequest(t, routes, http.MethodPost, "/bookings", validCreateBookingRequest())
		require.Equal(t, http.StatusCreated, created.Code)
		bookingID := decodeResponse[CreateBookingResponse](t, created).BookingID

		rr := doRequest(t, routes, http.MethodPost, "/bookings/"+bookingID+"/cancellation", cancelBody)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, decodeResponse[CancelBookingResponse](t, rr).Success)

		got := doRequest(t, routes, http.MethodGet, "/bookings/"+bookingID, nil)
		assert.Equal(t, "CANCELLED", decodeResponse[BookingResponse](t, got).Status)
	})

	t.Run("unknown booking returns 404", func(t *testing.T) {
		rr := doRequest(t, routes, http.MethodPost, "/bookings/BK-MISSING2/cancellation", cancelBody)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCompleteWorkflowHandler(t *testing.T) {
	app := newTestApplication(t)
	routes := app.routes()

	workflowBody := func(method string) map[string]any {
		return map[string]any{
			"customerName":  "Alice",
			"customerEmail": "alice@example.com",
			"customerPhone": "+15550100",
			"movieId":       2,
			"ticketType":    "VIP",
			"seatCount":     2,
			"showtime":      testShowtime,
			"paymentMethod": method,
		}
	}

	t.Run("successful workflow confirms the booking", func(t *testing.T) {
		rr := doRequest(t, routes, http.MethodPost, "/bookings/workflow", workflowBody("CASH"))

		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeResponse[WorkflowResponse](t, rr)
		assert.True(t, resp.Success)
		assert.Equal(t, "booking completed successfully", resp.Message)
		require.NotEmpty(t, resp.BookingID)

		got := doRequest(t, routes, http.MethodGet, "/bookings/"+resp.BookingID, nil)
		assert.Equal(t, "CONFIRMED", decodeResponse[BookingResponse](t, got).Status)
	})

	t.Run("declined payment cancels the booking", func(t *testing.T) {
		rr := doRequest(t, routes, http.MethodPost, "/bookings/workflow", workflowBody("STRIPE"))

		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeResponse[WorkflowResponse](t, rr)
		assert.False(t, resp.Success)
		assert.Equal(t, "payment failed - booking cancelled", resp.Message)
		require.NotEmpty(t, resp.BookingID)

		got := doRequest(t, routes, http.MethodGet, "/bookings/"+resp.BookingID, nil)
		assert.Equal(t, "CANCELLED", decodeResponse[BookingResponse](t, got).Status)
	})

	t.Run("unknown movie reports failure without a booking", func(t *testing.T) {
		body := workflowBody("CASH")
		body["movieId"] = 404

		rr := doRequest(t, routes, http.MethodPost, "/bookings/workflow", body)

		require.Equal(t, http.StatusOK, rr.Code)

		resp := decodeResponse[WorkflowResponse](t, rr)
		assert.False(t, resp.Success)
		assert.Empty(t, resp.BookingID)
		assert.Equal(t, "movie not found", resp.Message)
	})

	t.Run("missing payment method returns 422", func(t *testing.T) {
		body := workflowBody("CASH")
		delete(body, "paymentMethod")

		rr := doRequest(t, routes, http.MethodPost, "/bookings/workflow", body)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	})
}
