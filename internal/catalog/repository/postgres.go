package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-pricing-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

const (
	serviceColumns = `id, brand_id, location_id, category_id, name, description,
        base_price, duration_minutes, image_url, is_active, created_at, updated_at`
	productColumns = `id, brand_id, location_id, category_id, sku, name, description,
        base_price, image_url, is_active, created_at, updated_at`
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindServiceByID(ctx context.Context, t tenant.Tenant, id string) (*model.Service, error) {
	var s model.Service
	if err := r.findByID(ctx, &s, "services", serviceColumns, t, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) FindServices(ctx context.Context, t tenant.Tenant, f *dto.ItemFilters) ([]model.Service, int, error) {
	services := []model.Service{}
	count, err := r.findAll(ctx, &services, "services", serviceColumns, t, f)
	if err != nil {
		return nil, 0, err
	}
	return services, count, nil
}

func (r *PGRepository) FindProductByID(ctx context.Context, t tenant.Tenant, id string) (*model.Product, error) {
	var p model.Product
	if err := r.findByID(ctx, &p, "products", productColumns, t, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindProducts(ctx context.Context, t tenant.Tenant, f *dto.ItemFilters) ([]model.Product, int, error) {
	products := []model.Product{}
	count, err := r.findAll(ctx, &products, "products", productColumns, t, f)
	if err != nil {
		return nil, 0, err
	}
	return products, count, nil
}

func (r *PGRepository) findByID(ctx context.Context, dest interface{}, table, columns string, t tenant.Tenant, id string) error {
	query := fmt.Sprintf(`
        SELECT %s FROM %s
        WHERE id = $1 AND brand_id = $2 AND location_id = $3 AND is_active = true
        LIMIT 1`, columns, table)
	return r.DB.GetContext(ctx, dest, query, id, t.BrandID, t.LocationID)
}

// findAll lists one page of active items of a tenant in a stable name order
// and returns the total number of matching rows.
func (r *PGRepository) findAll(ctx context.Context, dest interface{}, table, columns string, t tenant.Tenant, f *dto.ItemFilters) (int, error) {
	conditions := []string{
		"brand_id = :brand_id",
		"location_id = :location_id",
		"is_active = true",
	}
	args := map[string]interface{}{
		"brand_id":    t.BrandID,
		"location_id": t.LocationID,
	}

	if f.CategoryID != "" {
		conditions = append(conditions, "category_id = :category_id")
		args["category_id"] = f.CategoryID
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	var count int
	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM "+table+whereClause, args)
	if err != nil {
		return 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY name ASC, id ASC", columns, table, whereClause)
	if f.PageSize > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, f.Offset())
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer nstmt.Close()

	if err := nstmt.SelectContext(ctx, dest, args); err != nil {
		return 0, fmt.Errorf("list %s: %w", table, err)
	}

	return count, nil
}
