package offer

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

// Repository returns the offers the resolver should consider for one tenant
// and item kind, in resolution order.
type Repository interface {
	FetchActive(ctx context.Context, t tenant.Tenant, target pricing.Target) ([]pricing.Offer, error)
}

// RowRepository reads stored offer rows. Only administratively active rows
// for the tenant and target are returned, ordered by creation then id.
type RowRepository interface {
	FindActive(ctx context.Context, t tenant.Tenant, target pricing.Target) ([]model.Offer, error)
}

// Cache drops memoised offers so the next read goes to the database.
type Cache interface {
	Invalidate(ctx context.Context, t tenant.Tenant, targets ...pricing.Target) error
}
