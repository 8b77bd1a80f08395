package dto

import "github.com/fekuna/omnipos-pricing-service/internal/pricing"

// ItemView is a catalog item as returned to booking clients, with its
// resolved price flattened into the same object.
type ItemView struct {
	ID              string  `json:"id"`
	Kind            string  `json:"kind"`
	Name            string  `json:"name"`
	Description     *string `json:"description"`
	CategoryID      *string `json:"categoryId"`
	SKU             *string `json:"sku,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	ImageURL        *string `json:"imageUrl"`
	pricing.PriceView
}

type ItemList struct {
	Items    []ItemView `json:"items"`
	Total    int        `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
}
