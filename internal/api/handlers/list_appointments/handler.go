package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	listAppointments "github.com/m04kA/SMC-SalonService/internal/usecase/list_appointments"
)

const (
	msgInvalidQuery  = "некорректные параметры запроса"
	msgInvalidFilter = "некорректный фильтр или сортировка"
)

type Handler struct {
	useCase ListAppointmentsUseCase
	logger  Logger
}

func NewHandler(useCase ListAppointmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r)
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, listAppointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /appointments - Appointments listed: range=%s..%s, count=%d",
		response.Range.Start, response.Range.End, response.Total)
	handlers.RespondJSON(w, http.StatusOK, response)
}
