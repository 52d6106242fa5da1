package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(app.recoverPanic)

	r.Get("/health", app.healthcheckHandler)
	r.Get("/movies", app.listMoviesHandler)
	r.Get("/inventory", app.inventoryReportHandler)
	r.Get("/payments/statistics", app.paymentStatisticsHandler)

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", app.createBookingHandler)
		r.Post("/workflow", app.completeWorkflowHandler)
		r.Get("/{bookingId}", app.getBookingHandler)
		r.Post("/{bookingId}/payment", app.processPaymentHandler)
		r.Post("/{bookingId}/cancellation", app.cancelBookingHandler)
	})

	return r
}
