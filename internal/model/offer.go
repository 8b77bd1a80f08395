package model

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Offer struct {
	BaseModel
	BrandID       string          `db:"brand_id" json:"brand_id"`
	LocationID    string          `db:"location_id" json:"location_id"`
	Name          string          `db:"name" json:"name"`
	Description   *string         `db:"description" json:"description"`
	DiscountType  string          `db:"discount_type" json:"discount_type"` // percentage | amount
	DiscountValue decimal.Decimal `db:"discount_value" json:"discount_value"`
	Target        string          `db:"target" json:"target"` // service | product
	Scope         string          `db:"scope" json:"scope"`   // all | categories | services | products
	IsActive      bool            `db:"is_active" json:"is_active"`
	StartDate     *time.Time      `db:"start_date" json:"start_date"`
	EndDate       *time.Time      `db:"end_date" json:"end_date"`
	CategoryIDs   pq.StringArray  `db:"category_ids" json:"category_ids"`
	ItemIDs       pq.StringArray  `db:"item_ids" json:"item_ids"`
}
