package wire

import (
	"conference-booking/internal/adaptor"
	"conference-booking/internal/data/repository"
	"conference-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHotel(
	r chi.Router,
	hotelHandler *adaptor.HotelHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/hotels - List hotels (requires a paid, hotel-inclusive ticket)
		r.Get("/api/hotels", hotelHandler.ListHotels)

		// GET /api/hotels/{hotelId} - List a hotel's rooms
		r.Get("/api/hotels/{hotelId}", hotelHandler.GetHotelWithRooms)
	})
}
