package adaptor

import (
	"encoding/json"
	"net/http"

	"conference-booking/internal/dto/request"
	"conference-booking/internal/usecase"
	"conference-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetBooking handles GET /api/booking (protected)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	booking, err := h.service.GetBooking(r.Context(), userID)
	if err != nil {
		respondDomainError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// CreateBooking handles POST /api/booking (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), userID, req.RoomID)
	if err != nil {
		respondDomainError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ChangeBooking handles PUT /api/booking/{bookingId} (protected)
func (h *BookingHandler) ChangeBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	// The path id is validated here, before any domain rule runs: missing,
	// non-numeric and non-positive ids are a 400, never a 403/404.
	bookingID, ok := utils.ParseID(chi.URLParam(r, "bookingId"))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid Id", nil)
		return
	}

	var req request.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.ChangeBooking(r.Context(), userID, req.RoomID, bookingID)
	if err != nil {
		respondDomainError(w, h.log, err, "change booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
