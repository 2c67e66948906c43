package export_appointments

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	listHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/list_appointments"
	exportAppointments "github.com/m04kA/SMC-SalonService/internal/usecase/export_appointments"
	listAppointments "github.com/m04kA/SMC-SalonService/internal/usecase/list_appointments"
)

const (
	msgInvalidQuery  = "некорректные параметры запроса"
	msgInvalidFilter = "некорректный фильтр или сортировка"
)

type Handler struct {
	useCase ExportAppointmentsUseCase
	logger  Logger
}

func NewHandler(useCase ExportAppointmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := listHandler.ParseRequest(r)
	if err != nil {
		h.logger.Warn("GET /appointments/export - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, listAppointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments/export - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /appointments/export - Failed to export appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", exportAppointments.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		h.logger.Error("GET /appointments/export - Failed to write file: file=%s, error=%v", result.FileName, err)
		return
	}

	h.logger.Info("GET /appointments/export - Appointments exported: file=%s, rows=%d", result.FileName, result.Rows)
}
