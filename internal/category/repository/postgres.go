package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-pricing-service/internal/category/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context, t tenant.Tenant, f *dto.CategoryFilters) ([]model.Category, error) {
	conditions := []string{
		"brand_id = :brand_id",
		"location_id = :location_id",
		"is_active = true",
	}
	args := map[string]interface{}{
		"brand_id":    t.BrandID,
		"location_id": t.LocationID,
	}

	if f != nil && f.ParentID != nil {
		if *f.ParentID == "" {
			conditions = append(conditions, "parent_id IS NULL")
		} else {
			conditions = append(conditions, "parent_id = :parent_id")
			args["parent_id"] = *f.ParentID
		}
	}

	query := `
        SELECT id, brand_id, location_id, parent_id, name, description, image_url,
               sort_order, is_active, created_at, updated_at
        FROM categories
        WHERE ` + strings.Join(conditions, " AND ") + `
        ORDER BY sort_order ASC, name ASC`

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	categories := []model.Category{}
	if err := nstmt.SelectContext(ctx, &categories, args); err != nil {
		return nil, err
	}
	return categories, nil
}
