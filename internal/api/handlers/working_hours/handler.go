package working_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/workinghours"
)

const (
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgStaffNotFound      = "сотрудник не найден"
)

type Handler struct {
	service WorkingHoursService
	logger  Logger
}

func NewHandler(service WorkingHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /api/v1/staff/{id}/working-hours
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/working-hours - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	tpl, err := h.service.GetTemplate(r.Context(), staffID)
	if err != nil {
		h.respondError(w, "GET /staff/{id}/working-hours", staffID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromTemplate(tpl))
}

// Put PUT /api/v1/staff/{id}/working-hours?confirm=true
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /staff/{id}/working-hours - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req TemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/{id}/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	week, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("PUT /staff/{id}/working-hours - Invalid template: staff_id=%d, error=%v", staffID, err)
		handlers.RespondDomainError(w, err)
		return
	}

	tpl, err := h.service.SetTemplate(r.Context(), staffID, week, handlers.IsConfirmed(r))
	if err != nil {
		h.respondError(w, "PUT /staff/{id}/working-hours", staffID, err)
		return
	}

	h.logger.Info("PUT /staff/{id}/working-hours - Template replaced: staff_id=%d", staffID)
	handlers.RespondJSON(w, http.StatusOK, FromTemplate(tpl))
}

// Reset DELETE /api/v1/staff/{id}/working-hours?confirm=true
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /staff/{id}/working-hours - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	tpl, err := h.service.Reset(r.Context(), staffID, handlers.IsConfirmed(r))
	if err != nil {
		h.respondError(w, "DELETE /staff/{id}/working-hours", staffID, err)
		return
	}

	h.logger.Info("DELETE /staff/{id}/working-hours - Template reset to default: staff_id=%d", staffID)
	handlers.RespondJSON(w, http.StatusOK, FromTemplate(tpl))
}

func (h *Handler) respondError(w http.ResponseWriter, route string, staffID int64, err error) {
	if handlers.RespondDomainError(w, err) {
		h.logger.Warn("%s - Rejected: staff_id=%d, reason=%v", route, staffID, err)
		return
	}

	switch {
	case errors.Is(err, workinghours.ErrStaffNotFound):
		h.logger.Warn("%s - Staff not found: staff_id=%d", route, staffID)
		handlers.RespondNotFound(w, msgStaffNotFound)

	default:
		h.logger.Error("%s - Failed: staff_id=%d, error=%v", route, staffID, err)
		handlers.RespondInternalError(w)
	}
}
