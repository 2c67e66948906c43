package adjust_prices

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	adjustPrices "github.com/m04kA/SMC-SalonService/internal/usecase/adjust_prices"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type fakeUseCase struct {
	req  *adjustPrices.Request
	resp *adjustPrices.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *adjustPrices.Request) (*adjustPrices.Response, error) {
	f.req = req
	return f.resp, f.err
}

func post(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewWithWriter(io.Discard, "error", nil))
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/services/price-adjustments", strings.NewReader(body)))
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &adjustPrices.Response{
		Changes: []adjustPrices.Change{{ServiceID: 1, Name: "여성 커트", Before: 30000, After: 27000}},
		Updated: 1,
	}}

	rec := post(uc, `{"serviceIds":[1],"type":"percent","value":10,"direction":"decrease"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &adjustPrices.Request{ServiceIDs: []int64{1}, Type: "percent", Value: 10, Direction: "decrease"}, uc.req)

	var body AdjustPricesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Updated)
	assert.Equal(t, []ChangeResponse{{ServiceID: 1, Name: "여성 커트", Before: 30000, After: 27000}}, body.Changes)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"malformed", `[`, nil, http.StatusBadRequest},
		{"validation", `{"all":true,"type":"ratio"}`, domain.ValidationErrors{"type": "ожидается fixed или percent"}, http.StatusUnprocessableEntity},
		{"missing service", `{"serviceIds":[99],"type":"fixed","value":1000,"direction":"increase"}`, fmt.Errorf("%w: id=99", adjustPrices.ErrServiceNotFound), http.StatusNotFound},
		{"internal", `{"all":true,"type":"fixed","value":1000,"direction":"increase"}`, adjustPrices.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(&fakeUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
