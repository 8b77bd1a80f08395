package catalog

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

// Repository reads the active catalog of one tenant. Lookups by id return
// nil, nil when the item does not exist for that tenant.
type Repository interface {
	FindServiceByID(ctx context.Context, t tenant.Tenant, id string) (*model.Service, error)
	FindServices(ctx context.Context, t tenant.Tenant, filters *dto.ItemFilters) ([]model.Service, int, error)
	FindProductByID(ctx context.Context, t tenant.Tenant, id string) (*model.Product, error)
	FindProducts(ctx context.Context, t tenant.Tenant, filters *dto.ItemFilters) ([]model.Product, int, error)
}
