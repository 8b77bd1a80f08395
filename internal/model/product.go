package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	BrandID     string          `db:"brand_id" json:"brand_id"`
	LocationID  string          `db:"location_id" json:"location_id"`
	CategoryID  *string         `db:"category_id" json:"category_id"` // Nullable
	SKU         *string         `db:"sku" json:"sku"`
	Name        string          `db:"name" json:"name"`
	Description *string         `db:"description" json:"description"`
	BasePrice   decimal.Decimal `db:"base_price" json:"base_price"`
	ImageURL    *string         `db:"image_url" json:"image_url"`
	IsActive    bool            `db:"is_active" json:"is_active"`
}

type Service struct {
	BaseModel
	BrandID         string          `db:"brand_id" json:"brand_id"`
	LocationID      string          `db:"location_id" json:"location_id"`
	CategoryID      *string         `db:"category_id" json:"category_id"` // Nullable
	Name            string          `db:"name" json:"name"`
	Description     *string         `db:"description" json:"description"`
	BasePrice       decimal.Decimal `db:"base_price" json:"base_price"`
	DurationMinutes int             `db:"duration_minutes" json:"duration_minutes"`
	ImageURL        *string         `db:"image_url" json:"image_url"`
	IsActive        bool            `db:"is_active" json:"is_active"`
}
