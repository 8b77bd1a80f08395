package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-pricing-service/internal/catalog"
	"github.com/fekuna/omnipos-pricing-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/offer"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/clock"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

type catalogUseCase struct {
	repo   catalog.Repository
	offers offer.Repository
	clock  clock.Clock
	logger logger.ZapLogger
}

func NewCatalogUseCase(repo catalog.Repository, offers offer.Repository, clk clock.Clock, log logger.ZapLogger) catalog.UseCase {
	return &catalogUseCase{
		repo:   repo,
		offers: offers,
		clock:  clk,
		logger: log,
	}
}

func (uc *catalogUseCase) GetItem(ctx context.Context, kind pricing.Target, id string, q *dto.PriceQuery) (*dto.ItemView, error) {
	t, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	// Ids are UUID columns; anything else cannot exist.
	if _, err := uuid.Parse(id); err != nil {
		return nil, catalog.ErrItemNotFound
	}

	view, item, err := uc.findItem(ctx, t, kind, id)
	if err != nil {
		return nil, err
	}

	offers, err := uc.offers.FetchActive(ctx, t, kind)
	if err != nil {
		return nil, fmt.Errorf("price %s %s: %w", kind, id, err)
	}

	res := pricing.Resolve(item, offers, uc.referenceDate(q))
	view.PriceView = pricing.Compose(res)

	uc.logResolution(t, item, res, len(offers))

	return view, nil
}

func (uc *catalogUseCase) ListItems(ctx context.Context, kind pricing.Target, filters *dto.ItemFilters) (*dto.ItemList, error) {
	t, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	if filters == nil {
		filters = &dto.ItemFilters{}
	}
	filters.Normalize()
	if filters.CategoryID != "" {
		if _, err := uuid.Parse(filters.CategoryID); err != nil {
			return nil, catalog.ErrInvalidCategory
		}
	}

	views, items, total, err := uc.findItems(ctx, t, kind, filters)
	if err != nil {
		return nil, err
	}

	list := &dto.ItemList{
		Items:    views,
		Total:    total,
		Page:     filters.Page,
		PageSize: filters.PageSize,
	}
	if len(items) == 0 {
		return list, nil
	}

	// One offer fetch and one reference date for the whole page.
	offers, err := uc.offers.FetchActive(ctx, t, kind)
	if err != nil {
		return nil, fmt.Errorf("price %s list: %w", kind, err)
	}
	ref := uc.referenceDate(&filters.PriceQuery)

	for i, item := range items {
		res := pricing.Resolve(item, offers, ref)
		list.Items[i].PriceView = pricing.Compose(res)
	}

	uc.logger.Debug("priced catalog page",
		zap.String("brand_id", t.BrandID),
		zap.String("location_id", t.LocationID),
		zap.String("kind", string(kind)),
		zap.Int("items", len(items)),
		zap.Int("offers", len(offers)),
	)

	return list, nil
}

func (uc *catalogUseCase) findItem(ctx context.Context, t tenant.Tenant, kind pricing.Target, id string) (*dto.ItemView, pricing.Item, error) {
	switch kind {
	case pricing.TargetService:
		s, err := uc.repo.FindServiceByID(ctx, t, id)
		if err != nil {
			return nil, pricing.Item{}, fmt.Errorf("find service %s: %w", id, err)
		}
		if s == nil {
			return nil, pricing.Item{}, catalog.ErrItemNotFound
		}
		view, item := fromService(s)
		return &view, item, nil
	case pricing.TargetProduct:
		p, err := uc.repo.FindProductByID(ctx, t, id)
		if err != nil {
			return nil, pricing.Item{}, fmt.Errorf("find product %s: %w", id, err)
		}
		if p == nil {
			return nil, pricing.Item{}, catalog.ErrItemNotFound
		}
		view, item := fromProduct(p)
		return &view, item, nil
	}
	return nil, pricing.Item{}, catalog.ErrInvalidKind
}

func (uc *catalogUseCase) findItems(ctx context.Context, t tenant.Tenant, kind pricing.Target, f *dto.ItemFilters) ([]dto.ItemView, []pricing.Item, int, error) {
	switch kind {
	case pricing.TargetService:
		services, total, err := uc.repo.FindServices(ctx, t, f)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("list services: %w", err)
		}
		views := make([]dto.ItemView, len(services))
		items := make([]pricing.Item, len(services))
		for i := range services {
			views[i], items[i] = fromService(&services[i])
		}
		return views, items, total, nil
	case pricing.TargetProduct:
		products, total, err := uc.repo.FindProducts(ctx, t, f)
		if err != nil {
			return nil, nil, 0, fmt.Errorf("list products: %w", err)
		}
		views := make([]dto.ItemView, len(products))
		items := make([]pricing.Item, len(products))
		for i := range products {
			views[i], items[i] = fromProduct(&products[i])
		}
		return views, items, total, nil
	}
	return nil, nil, 0, catalog.ErrInvalidKind
}

func (uc *catalogUseCase) referenceDate(q *dto.PriceQuery) time.Time {
	if q != nil && q.At != nil {
		return *q.At
	}
	return uc.clock.Now()
}

func (uc *catalogUseCase) logResolution(t tenant.Tenant, item pricing.Item, res pricing.Result, offers int) {
	fields := []zap.Field{
		zap.String("brand_id", t.BrandID),
		zap.String("location_id", t.LocationID),
		zap.String("item_id", item.ID),
		zap.String("kind", string(item.Kind)),
		zap.Int("offers", offers),
		zap.String("base_price", res.BasePrice.String()),
		zap.String("final_price", res.FinalPrice.String()),
	}
	if res.AppliedOffer != nil {
		fields = append(fields, zap.String("applied_offer_id", res.AppliedOffer.ID))
	}
	uc.logger.Debug("resolved item price", fields...)
}

func fromService(s *model.Service) (dto.ItemView, pricing.Item) {
	duration := s.DurationMinutes
	view := dto.ItemView{
		ID:              s.ID,
		Kind:            string(pricing.TargetService),
		Name:            s.Name,
		Description:     s.Description,
		CategoryID:      s.CategoryID,
		DurationMinutes: &duration,
		ImageURL:        s.ImageURL,
	}
	item := pricing.Item{
		ID:         s.ID,
		Kind:       pricing.TargetService,
		BasePrice:  s.BasePrice,
		CategoryID: s.CategoryID,
	}
	return view, item
}

func fromProduct(p *model.Product) (dto.ItemView, pricing.Item) {
	view := dto.ItemView{
		ID:          p.ID,
		Kind:        string(pricing.TargetProduct),
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		SKU:         p.SKU,
		ImageURL:    p.ImageURL,
	}
	item := pricing.Item{
		ID:         p.ID,
		Kind:       pricing.TargetProduct,
		BasePrice:  p.BasePrice,
		CategoryID: p.CategoryID,
	}
	return view, item
}
