package handler

import (
	"context"

	"github.com/fekuna/omnipos-pricing-service/internal/catalog"
	"github.com/fekuna/omnipos-pricing-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

type getCall struct {
	kind   pricing.Target
	id     string
	query  *dto.PriceQuery
	tenant tenant.Tenant
}

type fakeUseCase struct {
	view    *dto.ItemView
	list    *dto.ItemList
	err     error
	get     *getCall
	kind    pricing.Target
	filters *dto.ItemFilters
}

func (f *fakeUseCase) GetItem(ctx context.Context, kind pricing.Target, id string, q *dto.PriceQuery) (*dto.ItemView, error) {
	t, _ := tenant.FromContext(ctx)
	f.get = &getCall{kind: kind, id: id, query: q, tenant: t}
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

func (f *fakeUseCase) ListItems(_ context.Context, kind pricing.Target, filters *dto.ItemFilters) (*dto.ItemList, error) {
	f.kind = kind
	f.filters = filters
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

var _ catalog.UseCase = (*fakeUseCase)(nil)

func discountedView() *dto.ItemView {
	return &dto.ItemView{
		ID:   "s1",
		Kind: "service",
		Name: "Balayage",
		PriceView: pricing.PriceView{
			BasePrice:  100,
			FinalPrice: 80,
			AppliedOffer: &pricing.AppliedOffer{
				ID:            "A",
				Name:          "Twenty off",
				DiscountType:  "percentage",
				DiscountValue: 20,
				Scope:         "all",
				AmountOff:     20,
			},
		},
	}
}
