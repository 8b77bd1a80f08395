package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-pricing-service/internal/catalog"
	"github.com/fekuna/omnipos-pricing-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

func newRouter(uc catalog.UseCase) http.Handler {
	r := chi.NewRouter()
	NewHTTPHandler(uc, logger.NewNop()).Register(r)
	return r
}

func serve(h http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHTTPHandler_GetItem(t *testing.T) {
	uc := &fakeUseCase{view: discountedView()}
	r := newRouter(uc)

	rec := serve(r, "/services/s1?at=2025-07-01T00:00:00Z")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, pricing.TargetService, uc.get.kind)
	assert.Equal(t, "s1", uc.get.id)
	require.NotNil(t, uc.get.query.At)
	assert.True(t, uc.get.query.At.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "s1", body["id"])
	assert.Equal(t, 100.0, body["basePrice"])
	assert.Equal(t, 80.0, body["finalPrice"])
	applied := body["appliedOffer"].(map[string]interface{})
	assert.Equal(t, "A", applied["id"])
	assert.Equal(t, 20.0, applied["amountOff"])
}

func TestHTTPHandler_GetItemWithoutOffer(t *testing.T) {
	uc := &fakeUseCase{view: &dto.ItemView{ID: "p1", Kind: "product", PriceView: pricing.PriceView{BasePrice: 12, FinalPrice: 12}}}

	rec := serve(newRouter(uc), "/products/p1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pricing.TargetProduct, uc.get.kind)
	assert.Nil(t, uc.get.query.At)
	assert.Contains(t, rec.Body.String(), `"appliedOffer":null`)
}

func TestHTTPHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		url  string
		want int
	}{
		{name: "not found", err: catalog.ErrItemNotFound, url: "/services/nope", want: http.StatusNotFound},
		{name: "unknown tenant", err: tenant.ErrUnknownTenant, url: "/services/s1", want: http.StatusNotFound},
		{name: "missing tenant context", err: tenant.ErrContextMissing, url: "/services/s1", want: http.StatusInternalServerError},
		{name: "repository failure", err: errors.New("pq: connection refused"), url: "/products", want: http.StatusInternalServerError},
		{name: "bad at", url: "/services/s1?at=tomorrow", want: http.StatusBadRequest},
		{name: "bad page", url: "/services?page=-1", want: http.StatusBadRequest},
		{name: "bad page size", url: "/products?pageSize=ten", want: http.StatusBadRequest},
		{name: "invalid category", err: catalog.ErrInvalidCategory, url: "/services?categoryId=foo", want: http.StatusBadRequest},
		{name: "page beyond int", url: "/services?page=99999999999999999999", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err, view: discountedView(), list: &dto.ItemList{}}

			rec := serve(newRouter(uc), tt.url)

			assert.Equal(t, tt.want, rec.Code)
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}

func TestHTTPHandler_ListItems(t *testing.T) {
	uc := &fakeUseCase{list: &dto.ItemList{
		Items:    []dto.ItemView{*discountedView()},
		Total:    1,
		Page:     2,
		PageSize: 10,
	}}

	rec := serve(newRouter(uc), "/services?categoryId=color&page=2&pageSize=10&at=2025-06-15T09:30:00%2B02:00")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pricing.TargetService, uc.kind)
	assert.Equal(t, "color", uc.filters.CategoryID)
	assert.Equal(t, 2, uc.filters.Page)
	assert.Equal(t, 10, uc.filters.PageSize)
	require.NotNil(t, uc.filters.At)
	assert.True(t, uc.filters.At.Equal(time.Date(2025, 6, 15, 7, 30, 0, 0, time.UTC)))

	var body dto.ItemList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 80.0, body.Items[0].FinalPrice)
}
