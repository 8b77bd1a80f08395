package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-pricing-service/internal/catalog"
	"github.com/fekuna/omnipos-pricing-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/response"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
)

// HTTPHandler serves priced catalog reads. Routes must be mounted behind the
// tenant middleware.
type HTTPHandler struct {
	uc     catalog.UseCase
	logger logger.ZapLogger
}

func NewHTTPHandler(uc catalog.UseCase, log logger.ZapLogger) *HTTPHandler {
	return &HTTPHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *HTTPHandler) Register(r chi.Router) {
	r.Get("/services", h.listItems(pricing.TargetService))
	r.Get("/services/{id}", h.getItem(pricing.TargetService))
	r.Get("/products", h.listItems(pricing.TargetProduct))
	r.Get("/products/{id}", h.getItem(pricing.TargetProduct))
}

func (h *HTTPHandler) getItem(kind pricing.Target) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		at, err := parseAt(r.URL.Query().Get("at"))
		if err != nil {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		view, err := h.uc.GetItem(r.Context(), kind, chi.URLParam(r, "id"), &dto.PriceQuery{At: at})
		if err != nil {
			h.fail(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, view)
	}
}

func (h *HTTPHandler) listItems(kind pricing.Target) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		at, err := parseAt(q.Get("at"))
		if err != nil {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		page, err := parseInt(q.Get("page"), "page")
		if err != nil {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		pageSize, err := parseInt(q.Get("pageSize"), "pageSize")
		if err != nil {
			response.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		filters := &dto.ItemFilters{
			PriceQuery: dto.PriceQuery{At: at},
			CategoryID: q.Get("categoryId"),
			Page:       page,
			PageSize:   pageSize,
		}

		list, err := h.uc.ListItems(r.Context(), kind, filters)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		response.JSON(w, http.StatusOK, list)
	}
}

func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := httpStatus(err)
	if code >= http.StatusInternalServerError {
		h.logger.Error("catalog request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		response.Error(w, code, http.StatusText(code))
		return
	}
	response.Error(w, code, err.Error())
}

func parseAt(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("at must be an RFC3339 timestamp")
	}
	return &at, nil
}

func parseInt(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return n, nil
}
