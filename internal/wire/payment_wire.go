package wire

import (
	"conference-booking/internal/adaptor"
	"conference-booking/internal/data/repository"
	"conference-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/payments?ticketId= - View payment info for a ticket
		r.Get("/api/payments", paymentHandler.GetPaymentInfo)

		// POST /api/payments/process - Pay for a ticket
		r.Post("/api/payments/process", paymentHandler.ProcessPayment)
	})
}
