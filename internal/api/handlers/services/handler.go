package services

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
)

const (
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "услуга не найдена"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/services?sort=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	sortKey := r.URL.Query().Get("sort")

	services, err := h.service.ListServices(r.Context(), sortKey)
	if err != nil {
		h.respondError(w, "GET /services", 0, err)
		return
	}

	h.logger.Info("GET /services - Services listed: sort=%s, count=%d", sortKey, len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(services))
}

// Create POST /api/v1/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.service.CreateService(r.Context(), req.ToServiceInput())
	if err != nil {
		h.respondError(w, "POST /services", 0, err)
		return
	}

	h.logger.Info("POST /services - Service created successfully: service_id=%d, name=%s", service.ID, service.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(service))
}

// Update PUT /api/v1/services/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	service, err := h.service.UpdateService(r.Context(), id, req.ToServiceInput())
	if err != nil {
		h.respondError(w, "PUT /services/{id}", id, err)
		return
	}

	h.logger.Info("PUT /services/{id} - Service updated successfully: service_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(service))
}

// Delete DELETE /api/v1/services/{id}?confirm=true
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /services/{id} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.DeleteService(r.Context(), id, handlers.IsConfirmed(r)); err != nil {
		h.respondError(w, "DELETE /services/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: service_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, id int64, err error) {
	if handlers.RespondDomainError(w, err) {
		h.logger.Warn("%s - Rejected: service_id=%d, reason=%v", route, id, err)
		return
	}

	switch {
	case errors.Is(err, catalog.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: service_id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Failed: service_id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
