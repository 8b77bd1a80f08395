package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fekuna/omnipos-pricing-service/internal/category"
	"github.com/fekuna/omnipos-pricing-service/internal/category/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

type categoryUseCase struct {
	repo   category.Repository
	logger logger.ZapLogger
}

func NewCategoryUseCase(repo category.Repository, log logger.ZapLogger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, filters *dto.CategoryFilters) ([]dto.CategoryView, error) {
	t, err := tenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	// An empty parent id selects root categories.
	if filters != nil && filters.ParentID != nil && *filters.ParentID != "" {
		if _, err := uuid.Parse(*filters.ParentID); err != nil {
			return nil, category.ErrInvalidParent
		}
	}

	categories, err := uc.repo.FindAll(ctx, t, filters)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	views := make([]dto.CategoryView, len(categories))
	for i, c := range categories {
		views[i] = dto.CategoryView{
			ID:          c.ID,
			ParentID:    c.ParentID,
			Name:        c.Name,
			Description: c.Description,
			ImageURL:    c.ImageURL,
		}
	}
	return views, nil
}
