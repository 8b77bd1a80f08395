package model

type Location struct {
	BaseModel
	BrandID   string `db:"brand_id" json:"brand_id"`
	Name      string `db:"name" json:"name"`
	Subdomain string `db:"subdomain" json:"subdomain"`
	IsActive  bool   `db:"is_active" json:"is_active"`
}
