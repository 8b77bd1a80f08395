package offer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

var testTenant = tenant.Tenant{BrandID: "brand-1", LocationID: "loc-1"}

type fakeRows struct {
	rows   []model.Offer
	err    error
	gotT   tenant.Tenant
	target pricing.Target
}

func (f *fakeRows) FindActive(_ context.Context, t tenant.Tenant, target pricing.Target) ([]model.Offer, error) {
	f.gotT = t
	f.target = target
	return f.rows, f.err
}

func row(id, discountType, value, target, scope string) model.Offer {
	return model.Offer{
		BaseModel:     model.BaseModel{ID: id, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		BrandID:       testTenant.BrandID,
		LocationID:    testTenant.LocationID,
		Name:          "offer " + id,
		DiscountType:  discountType,
		DiscountValue: decimal.RequireFromString(value),
		Target:        target,
		Scope:         scope,
		IsActive:      true,
	}
}
