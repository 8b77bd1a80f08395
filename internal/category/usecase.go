package category

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/category/dto"
)

// UseCase lists the categories the booking UI filters services and products by.
type UseCase interface {
	ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]dto.CategoryView, error)
}
