package adjust_prices

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	adjustPrices "github.com/m04kA/SMC-SalonService/internal/usecase/adjust_prices"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgServiceNotFound    = "одна из выбранных услуг не найдена"
)

type Handler struct {
	useCase AdjustPricesUseCase
	logger  Logger
}

func NewHandler(useCase AdjustPricesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/services/price-adjustments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AdjustPricesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services/price-adjustments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /services/price-adjustments - Validation failed: %v", err)
			return
		}

		switch {
		case errors.Is(err, adjustPrices.ErrServiceNotFound):
			h.logger.Warn("POST /services/price-adjustments - Service not found: %v", err)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("POST /services/price-adjustments - Failed to adjust prices: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services/price-adjustments - Prices adjusted: type=%s, direction=%s, value=%v, updated=%d",
		req.Type, req.Direction, req.Value, result.Updated)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
