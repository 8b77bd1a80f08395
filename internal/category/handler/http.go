package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-pricing-service/internal/category"
	"github.com/fekuna/omnipos-pricing-service/internal/category/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/response"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) Register(r chi.Router) {
	r.Get("/categories", h.listCategories)
}

// listCategories accepts ?parentId=<id>, or ?root=true for top-level only.
func (h *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := &dto.CategoryFilters{}
	switch {
	case q.Get("parentId") != "":
		parentID := q.Get("parentId")
		filters.ParentID = &parentID
	case q.Get("root") == "true":
		root := ""
		filters.ParentID = &root
	}

	categories, err := h.uc.ListCategories(r.Context(), filters)
	if err != nil {
		switch {
		case errors.Is(err, category.ErrInvalidParent):
			response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, tenant.ErrUnknownTenant):
			response.Error(w, http.StatusNotFound, "unknown tenant")
		default:
			h.logger.Error("failed to list categories", zap.Error(err))
			response.Error(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}
