package category

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/category/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

type Repository interface {
	FindAll(ctx context.Context, t tenant.Tenant, filters *dto.CategoryFilters) ([]model.Category, error)
}
