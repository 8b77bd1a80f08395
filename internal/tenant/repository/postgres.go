package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

// ResolveSubdomain finds the active location published under subdomain.
// Locations of inactive brands do not resolve.
func (r *PGRepository) ResolveSubdomain(ctx context.Context, subdomain string) (tenant.Tenant, error) {
	var loc model.Location
	query := `
        SELECT l.id, l.brand_id, l.name, l.subdomain, l.is_active, l.created_at, l.updated_at
        FROM locations l
        JOIN brands b ON b.id = l.brand_id
        WHERE l.subdomain = $1 AND l.is_active AND b.is_active
        LIMIT 1
    `
	err := r.DB.GetContext(ctx, &loc, query, subdomain)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return tenant.Tenant{}, tenant.ErrUnknownTenant
		}
		return tenant.Tenant{}, fmt.Errorf("resolve subdomain %q: %w", subdomain, err)
	}

	return tenant.Tenant{BrandID: loc.BrandID, LocationID: loc.ID}, nil
}
