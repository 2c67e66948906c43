package customers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	customersService "github.com/m04kA/SMC-SalonService/internal/service/customers"
)

const (
	msgInvalidCustomerID  = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "клиент не найден"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/customers?q=
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.logger.Error("GET /customers - Failed to list customers: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers - Customers listed: count=%d", len(customers))
	handlers.RespondJSON(w, http.StatusOK, FromDomainList(customers))
}

// Get GET /api/v1/customers/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("GET /customers/{id} - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	customer, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /customers/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(customer))
}

// Create POST /api/v1/customers
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	customer, err := h.service.Create(r.Context(), req.ToServiceInput())
	if err != nil {
		h.respondError(w, "POST /customers", 0, err)
		return
	}

	h.logger.Info("POST /customers - Customer created successfully: customer_id=%d", customer.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(customer))
}

// Update PUT /api/v1/customers/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /customers/{id} - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	var req CustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /customers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	customer, err := h.service.Update(r.Context(), id, req.ToServiceInput())
	if err != nil {
		h.respondError(w, "PUT /customers/{id}", id, err)
		return
	}

	h.logger.Info("PUT /customers/{id} - Customer updated successfully: customer_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(customer))
}

// Delete DELETE /api/v1/customers/{id}?confirm=true
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /customers/{id} - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	if err := h.service.Delete(r.Context(), id, handlers.IsConfirmed(r)); err != nil {
		h.respondError(w, "DELETE /customers/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /customers/{id} - Customer deleted: customer_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, id int64, err error) {
	if handlers.RespondDomainError(w, err) {
		h.logger.Warn("%s - Rejected: customer_id=%d, reason=%v", route, id, err)
		return
	}

	switch {
	case errors.Is(err, customersService.ErrCustomerNotFound):
		h.logger.Warn("%s - Customer not found: customer_id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Failed: customer_id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
