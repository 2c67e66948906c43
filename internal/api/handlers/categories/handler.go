package categories

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
)

const (
	msgInvalidCategoryID  = "некорректный ID категории"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "категория не найдена"
)

type Handler struct {
	service CategoryService
	logger  Logger
}

func NewHandler(service CategoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/categories
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		h.respondError(w, "GET /categories", 0, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(categories))
}

// Create POST /api/v1/categories
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), req.ToServiceInput())
	if err != nil {
		h.respondError(w, "POST /categories", 0, err)
		return
	}

	h.logger.Info("POST /categories - Category created successfully: category_id=%d", category.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(category))
}

// Update PUT /api/v1/categories/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /categories/{id} - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	var req CategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /categories/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), id, req.ToServiceInput())
	if err != nil {
		h.respondError(w, "PUT /categories/{id}", id, err)
		return
	}

	h.logger.Info("PUT /categories/{id} - Category updated successfully: category_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(category))
}

// Delete DELETE /api/v1/categories/{id}?confirm=true
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /categories/{id} - Invalid category ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCategoryID)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), id, handlers.IsConfirmed(r)); err != nil {
		h.respondError(w, "DELETE /categories/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /categories/{id} - Category deleted: category_id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, id int64, err error) {
	if handlers.RespondDomainError(w, err) {
		h.logger.Warn("%s - Rejected: category_id=%d, reason=%v", route, id, err)
		return
	}

	switch {
	case errors.Is(err, catalog.ErrCategoryNotFound):
		h.logger.Warn("%s - Category not found: category_id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)

	default:
		h.logger.Error("%s - Failed: category_id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
