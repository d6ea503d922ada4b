package wire

import (
	"conference-booking/internal/adaptor"
	"conference-booking/internal/data/repository"
	"conference-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireEnrollment(
	r chi.Router,
	enrollmentHandler *adaptor.EnrollmentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/enrollments - View the caller's enrollment
		r.Get("/api/enrollments", enrollmentHandler.GetEnrollment)

		// POST /api/enrollments - Create or update the caller's enrollment
		r.Post("/api/enrollments", enrollmentHandler.UpsertEnrollment)
	})
}
