package app

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/cinema-booking-engine/internal/domain"
	"github.com/shopspring/decimal"
)

type ProcessPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	PaymentMethod string          `json:"paymentMethod" validate:"required,payment_method"`
	CustomerEmail string          `json:"customerEmail" validate:"required,email"`
	CustomerPhone string          `json:"customerPhone" validate:"required"`
}

type ProcessPaymentResponse struct {
	Success bool `json:"success"`
}

func (app *application) processPaymentHandler(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	var req ProcessPaymentRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	_, err = app.bookings.GetBooking(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			app.notFoundResponseWithErr(w, r, err)
		} else {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	ok, err := app.workflow.ProcessPayment(r.Context(), bookingID,
		req.Amount, req.PaymentMethod, req.CustomerEmail, req.CustomerPhone)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, ProcessPaymentResponse{Success: ok}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type PaymentStatisticsResponse struct {
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Failed    int    `json:"failed"`
	Refunded  int    `json:"refunded"`
	Revenue   string `json:"revenue"`
}

func (app *application) paymentStatisticsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := app.payments.Statistics(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := PaymentStatisticsResponse{
		Total:     stats.Total,
		Completed: stats.Completed,
		Failed:    stats.Failed,
		Refunded:  stats.Refunded,
		Revenue:   stats.Revenue.StringFixed(2),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type InventoryReportResponse struct {
	SeatsReserved     int64 `json:"seatsReserved"`
	SeatsReleased     int64 `json:"seatsReleased"`
	NetReserved       int64 `json:"netReserved"`
	BookingsCreated   int64 `json:"bookingsCreated"`
	BookingsConfirmed int64 `json:"bookingsConfirmed"`
	BookingsCancelled int64 `json:"bookingsCancelled"`
}

func (app *application) inventoryReportHandler(w http.ResponseWriter, r *http.Request) {
	report, err := app.inventory.Report(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := InventoryReportResponse{
		SeatsReserved:     report.SeatsReserved,
		SeatsReleased:     report.SeatsReleased,
		NetReserved:       report.NetReserved,
		BookingsCreated:   report.BookingsCreated,
		BookingsConfirmed: report.BookingsConfirmed,
		BookingsCancelled: report.BookingsCancelled,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
