package wire

import (
	"conference-booking/internal/adaptor"
	"conference-booking/internal/data/repository"
	"conference-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/booking - View the caller's booking
		r.Get("/api/booking", bookingHandler.GetBooking)

		// POST /api/booking - Book a room
		r.Post("/api/booking", bookingHandler.CreateBooking)

		// PUT /api/booking/{bookingId} - Move the booking to another room
		r.Put("/api/booking/{bookingId}", bookingHandler.ChangeBooking)
	})
}
