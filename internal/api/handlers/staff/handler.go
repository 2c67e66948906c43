package staff

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	staffService "github.com/m04kA/SMC-SalonService/internal/service/staff"
)

const (
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "сотрудник не найден"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/staff?status=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	staff, err := h.service.List(r.Context(), status)
	if err != nil {
		h.respondError(w, "GET /staff", 0, err)
		return
	}

	h.logger.Info("GET /staff - Staff listed: count=%d", len(staff))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(staff))
}

// Get GET /api/v1/staff/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /staff/{id} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	member, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /staff/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(member))
}

// Create POST /api/v1/staff
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req StaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	member, err := h.service.Create(r.Context(), req.ToServiceInput())
	if err != nil {
		h.respondError(w, "POST /staff", 0, err)
		return
	}

	h.logger.Info("POST /staff - Staff created successfully: staff_id=%d, position=%s", member.ID, member.Position)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(member))
}

// Update PUT /api/v1/staff/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /staff/{id} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req StaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	member, err := h.service.Update(r.Context(), id, req.ToServiceInput())
	if err != nil {
		h.respondError(w, "PUT /staff/{id}", id, err)
		return
	}

	h.logger.Info("PUT /staff/{id} - Staff updated successfully: staff_id=%d, status=%s", id, member.Status)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(member))
}

// Delete DELETE /api/v1/staff/{id}?confirm=true
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /staff/{id} - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	if err := h.service.Delete(r.Context(), id, handlers.IsConfirmed(r)); err != nil {
		h.respondError(w, "DELETE /staff/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /staff/{id} - Staff deleted: staff_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, id int64, err error) {
	if handlers.RespondDomainError(w, err) {
		h.logger.Warn("%s - Rejected: staff_id=%d, reason=%v", route, id, err)
		return
	}

	switch {
	case errors.Is(err, staffService.ErrStaffNotFound):
		h.logger.Warn("%s - Staff not found: staff_id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Failed: staff_id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
