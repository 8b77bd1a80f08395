package catalog

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
)

// UseCase serves priced catalog items for the tenant on ctx.
type UseCase interface {
	GetItem(ctx context.Context, kind pricing.Target, id string, query *dto.PriceQuery) (*dto.ItemView, error)
	ListItems(ctx context.Context, kind pricing.Target, filters *dto.ItemFilters) (*dto.ItemList, error)
}
