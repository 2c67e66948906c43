package appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "запись не найдена"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /api/v1/appointments/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	appointment, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /appointments/{id}", id, err)
		return
	}

	h.logger.Info("GET /appointments/{id} - Appointment retrieved successfully: appointment_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointment(appointment))
}

// UpdateStatus PATCH /api/v1/appointments/{id}/status
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, req.Status); err != nil {
		h.respondError(w, "PATCH /appointments/{id}/status", id, err)
		return
	}

	appointment, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "PATCH /appointments/{id}/status", id, err)
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status updated: appointment_id=%d, status=%s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointment(appointment))
}

// Delete DELETE /api/v1/appointments/{id}?confirm=true
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	if err := h.service.Delete(r.Context(), id, handlers.IsConfirmed(r)); err != nil {
		h.respondError(w, "DELETE /appointments/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment deleted: appointment_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, id int64, err error) {
	if handlers.RespondDomainError(w, err) {
		h.logger.Warn("%s - Rejected: appointment_id=%d, reason=%v", route, id, err)
		return
	}

	switch {
	case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
		h.logger.Warn("%s - Appointment not found: appointment_id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Failed: appointment_id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
