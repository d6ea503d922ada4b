package wire

import (
	"conference-booking/internal/adaptor"
	"conference-booking/internal/data/repository"
	"conference-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/register - Create a new account
	r.Post("/api/register", authHandler.Register)

	// POST /api/login - Authenticate and receive a session token
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/logout - Revoke the current session
		r.Post("/api/logout", authHandler.Logout)
	})
}
