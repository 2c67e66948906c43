package categories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type fakeCatalog struct {
	listErr error
	deleted []int64
}

func (f *fakeCatalog) ListCategories(context.Context) ([]*domain.Category, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []*domain.Category{
		{ID: 1, Name: "헤어", Color: "#FFB6C1", SortOrder: 0, Active: true},
		{ID: 2, Name: "네일", Color: "#87CEEB", SortOrder: 1, Active: true},
	}, nil
}

func (f *fakeCatalog) CreateCategory(_ context.Context, in catalog.CategoryInput) (*domain.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return &domain.Category{ID: 3, Name: in.Name, Color: in.Color, SortOrder: in.SortOrder, Active: true}, nil
}

func (f *fakeCatalog) UpdateCategory(_ context.Context, id int64, in catalog.CategoryInput) (*domain.Category, error) {
	if id > 2 {
		return nil, catalog.ErrCategoryNotFound
	}
	return &domain.Category{ID: id, Name: in.Name, SortOrder: in.SortOrder}, nil
}

func (f *fakeCatalog) DeleteCategory(_ context.Context, id int64, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationRequired
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func newRouter(svc *fakeCatalog) *mux.Router {
	h := NewHandler(svc, logger.NewWithWriter(io.Discard, "error", nil))
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/categories", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/categories", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/categories/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/v1/categories/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func serve(r http.Handler, method, url, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, url, strings.NewReader(body)))
	return rec
}

func TestListCreate(t *testing.T) {
	r := newRouter(&fakeCatalog{})

	rec := serve(r, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []CategoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "#FFB6C1", list[0].Color)

	rec = serve(r, http.MethodPost, "/api/v1/categories", `{"name":"피부","color":"#98FB98","sortOrder":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, http.StatusUnprocessableEntity, serve(r, http.MethodPost, "/api/v1/categories", `{"name":""}`).Code)
}

func TestList_InternalError(t *testing.T) {
	r := newRouter(&fakeCatalog{listErr: fmt.Errorf("%w: db", catalog.ErrInternal)})
	assert.Equal(t, http.StatusInternalServerError, serve(r, http.MethodGet, "/api/v1/categories", "").Code)
}

func TestUpdateDelete(t *testing.T) {
	svc := &fakeCatalog{}
	r := newRouter(svc)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPut, "/api/v1/categories/1", `{"name":"헤어","sortOrder":3}`).Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodPut, "/api/v1/categories/9", `{"name":"헤어"}`).Code)

	assert.Equal(t, http.StatusPreconditionFailed, serve(r, http.MethodDelete, "/api/v1/categories/2", "").Code)
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodDelete, "/api/v1/categories/2?confirm=true", "").Code)
	assert.Equal(t, []int64{2}, svc.deleted)
}
