package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindActive(ctx context.Context, t tenant.Tenant, target pricing.Target) ([]model.Offer, error) {
	query := `
        SELECT id, brand_id, location_id, name, description,
               discount_type, discount_value, target, scope, is_active,
               start_date, end_date, category_ids, item_ids,
               created_at, updated_at
        FROM offers
        WHERE brand_id = $1
          AND location_id = $2
          AND target = $3
          AND is_active = true
        ORDER BY created_at ASC, id ASC
    `
	offers := []model.Offer{}
	if err := r.DB.SelectContext(ctx, &offers, query, t.BrandID, t.LocationID, string(target)); err != nil {
		return nil, err
	}
	return offers, nil
}
