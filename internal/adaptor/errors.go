package adaptor

import (
	"errors"
	"net/http"

	"conference-booking/internal/usecase"
	"conference-booking/pkg/utils"

	"go.uber.org/zap"
)

// respondDomainError maps a tagged business error to its HTTP status.
// Anything untagged is a real failure and becomes a 500.
func respondDomainError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var domainErr *usecase.Error
	if errors.As(err, &domainErr) {
		switch domainErr.Kind {
		case usecase.KindBadRequest:
			log.Warn(operation+" failed - bad request", zap.Error(err))
			utils.ResponseBadRequest(w, domainErr.Message, nil)
		case usecase.KindUnauthorized:
			log.Warn(operation+" failed - unauthorized", zap.Error(err))
			utils.ResponseUnauthorized(w, domainErr.Message)
		case usecase.KindPaymentRequired:
			log.Warn(operation+" failed - payment required", zap.Error(err))
			utils.ResponsePaymentRequired(w, domainErr.Message)
		case usecase.KindForbidden:
			log.Warn(operation+" failed - forbidden", zap.Error(err))
			utils.ResponseForbidden(w, domainErr.Message)
		case usecase.KindNotFound:
			log.Warn(operation+" failed - not found", zap.Error(err))
			utils.ResponseNotFound(w, domainErr.Message)
		default:
			log.Error("Failed to "+operation, zap.Error(err))
			utils.ResponseInternalError(w, "Internal server error")
		}
		return
	}

	log.Error("Failed to "+operation, zap.Error(err))
	utils.ResponseInternalError(w, "Internal server error")
}
