package adaptor

import (
	"encoding/json"
	"net/http"

	"conference-booking/internal/dto/request"
	"conference-booking/internal/usecase"
	"conference-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// GetPaymentInfo handles GET /api/payments?ticketId= (protected)
func (h *PaymentHandler) GetPaymentInfo(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	ticketID, ok := utils.ParseID(r.URL.Query().Get("ticketId"))
	if !ok {
		utils.ResponseBadRequest(w, "Missing or invalid ticketId", nil)
		return
	}

	payment, err := h.service.GetPaymentInfo(r.Context(), userID, ticketID)
	if err != nil {
		respondDomainError(w, h.log, err, "get payment")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}

// ProcessPayment handles POST /api/payments/process (protected)
func (h *PaymentHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ProcessPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	payment, err := h.service.ProcessPayment(r.Context(), userID, &req)
	if err != nil {
		respondDomainError(w, h.log, err, "process payment")
		return
	}

	utils.ResponseSuccess(w, "Payment processed", payment)
}
