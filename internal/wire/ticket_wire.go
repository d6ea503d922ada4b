package wire

import (
	"conference-booking/internal/adaptor"
	"conference-booking/internal/data/repository"
	"conference-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTicket(
	r chi.Router,
	ticketHandler *adaptor.TicketHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/tickets/types - List available ticket types
		r.Get("/api/tickets/types", ticketHandler.GetTicketTypes)

		// GET /api/tickets - View the caller's ticket
		r.Get("/api/tickets", ticketHandler.GetUserTicket)

		// POST /api/tickets - Reserve a ticket
		r.Post("/api/tickets", ticketHandler.CreateTicket)
	})
}
