package adaptor

import (
	"encoding/json"
	"net/http"

	"conference-booking/internal/dto/request"
	"conference-booking/internal/usecase"
	"conference-booking/pkg/utils"

	"go.uber.org/zap"
)

type EnrollmentHandler struct {
	service usecase.EnrollmentService
	log     *zap.Logger
}

func NewEnrollmentHandler(service usecase.EnrollmentService, log *zap.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{
		service: service,
		log:     log.With(zap.String("handler", "enrollment")),
	}
}

// GetEnrollment handles GET /api/enrollments (protected)
func (h *EnrollmentHandler) GetEnrollment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	enrollment, err := h.service.GetEnrollment(r.Context(), userID)
	if err != nil {
		respondDomainError(w, h.log, err, "get enrollment")
		return
	}

	utils.ResponseSuccess(w, "success", enrollment)
}

// UpsertEnrollment handles POST /api/enrollments (protected)
func (h *EnrollmentHandler) UpsertEnrollment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.EnrollmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	enrollment, err := h.service.UpsertEnrollment(r.Context(), userID, &req)
	if err != nil {
		respondDomainError(w, h.log, err, "save enrollment")
		return
	}

	utils.ResponseSuccess(w, "success", enrollment)
}
