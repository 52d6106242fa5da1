package app

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/metinatakli/cinema-booking-engine/internal/domain"
	"github.com/metinatakli/cinema-booking-engine/internal/service"
)

type CreateBookingRequest struct {
	CustomerName  string    `json:"customerName" validate:"required"`
	CustomerEmail string    `json:"customerEmail" validate:"required,email"`
	CustomerPhone string    `json:"customerPhone" validate:"required"`
	MovieID       int       `json:"movieId" validate:"required,min=1"`
	TicketType    string    `json:"ticketType" validate:"required,ticket_type"`
	SeatRows      []int     `json:"seatRows" validate:"required,min=1,dive,min=1"`
	SeatNumbers   []int     `json:"seatNumbers" validate:"required,min=1,dive,min=1"`
	Showtime      time.Time `json:"showtime" validate:"required"`
	Add3DGlasses  bool      `json:"add3dGlasses"`
	AddSnackCombo bool      `json:"addSnackCombo"`
}

type CreateBookingResponse struct {
	BookingID string `json:"bookingId"`
}

func (app *application) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest

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

	bookingID, err := app.workflow.BookTickets(r.Context(), service.BookTicketsParams{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		MovieID:       req.MovieID,
		TicketType:    domain.TicketType(req.TicketType),
		SeatRows:      req.SeatRows,
		SeatNumbers:   req.SeatNumbers,
		Showtime:      req.Showtime,
		Add3DGlasses:  req.Add3DGlasses,
		AddSnackCombo: req.AddSnackCombo,
	})
	if err != nil {
		var validationErr *domain.ValidationError

		switch {
		case errors.Is(err, domain.ErrMovieNotFound):
			app.notFoundResponseWithErr(w, r, err)
		case errors.As(err, &validationErr):
			app.unprocessableEntityResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := CreateBookingResponse{BookingID: bookingID}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type BookingResponse struct {
	BookingID     string    `json:"bookingId"`
	CustomerEmail string    `json:"customerEmail"`
	MovieTitle    string    `json:"movieTitle"`
	SeatCount     int       `json:"seatCount"`
	TotalAmount   string    `json:"totalAmount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (app *application) getBookingHandler(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	booking, err := app.bookings.GetBooking(r.Context(), bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			app.notFoundResponseWithErr(w, r, err)
		} else {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := BookingResponse{
		BookingID:     booking.ID,
		CustomerEmail: booking.CustomerEmail,
		MovieTitle:    booking.MovieTitle,
		SeatCount:     booking.SeatCount,
		TotalAmount:   booking.TotalAmount.StringFixed(2),
		Status:        string(booking.Status),
		CreatedAt:     booking.CreatedAt,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type CancelBookingRequest struct {
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerPhone string `json:"customerPhone" validate:"required"`
}

type CancelBookingResponse struct {
	Success bool `json:"success"`
}

func (app *application) cancelBookingHandler(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingId")

	var req CancelBookingRequest

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

	ok, err := app.workflow.CancelBooking(r.Context(), bookingID, req.CustomerEmail, req.CustomerPhone)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			app.notFoundResponseWithErr(w, r, err)
		} else {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, CancelBookingResponse{Success: ok}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type CompleteWorkflowRequest struct {
	CustomerName  string    `json:"customerName" validate:"required"`
	CustomerEmail string    `json:"customerEmail" validate:"required,email"`
	CustomerPhone string    `json:"customerPhone" validate:"required"`
	MovieID       int       `json:"movieId" validate:"required,min=1"`
	TicketType    string    `json:"ticketType" validate:"required,ticket_type"`
	SeatCount     int       `json:"seatCount" validate:"required,min=1"`
	Showtime      time.Time `json:"showtime" validate:"required"`
	Add3DGlasses  bool      `json:"add3dGlasses"`
	AddSnackCombo bool      `json:"addSnackCombo"`
	PaymentMethod string    `json:"paymentMethod" validate:"required,payment_method"`
}

type WorkflowResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId,omitempty"`
	Message   string `json:"message"`
}

func (app *application) completeWorkflowHandler(w http.ResponseWriter, r *http.Request) {
	var req CompleteWorkflowRequest

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

	result := app.workflow.CompleteBookingWorkflow(r.Context(), service.CompleteBookingParams{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		MovieID:       req.MovieID,
		TicketType:    domain.TicketType(req.TicketType),
		SeatCount:     req.SeatCount,
		Showtime:      req.Showtime,
		Add3DGlasses:  req.Add3DGlasses,
		AddSnackCombo: req.AddSnackCombo,
		PaymentMethod: req.PaymentMethod,
	})

	resp := WorkflowResponse{
		Success:   result.Success,
		BookingID: result.BookingID,
		Message:   result.Message,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
