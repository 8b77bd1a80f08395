package offer

import (
	"github.com/fekuna/omnipos-pricing-service/internal/model"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
)

// ToPricing converts a stored row into the resolver's Offer. Rows the
// resolver cannot interpret yield an error wrapping pricing.ErrInvalidOffer.
func ToPricing(row model.Offer) (pricing.Offer, error) {
	target, err := pricing.ParseTarget(row.Target)
	if err != nil {
		return pricing.Offer{}, err
	}

	discount, err := pricing.ParseDiscount(row.DiscountType, row.DiscountValue)
	if err != nil {
		return pricing.Offer{}, err
	}

	scope, err := pricing.ParseScope(row.Scope, target, row.CategoryIDs, row.ItemIDs)
	if err != nil {
		return pricing.Offer{}, err
	}

	o := pricing.Offer{
		ID:        row.ID,
		Name:      row.Name,
		Target:    target,
		Scope:     scope,
		Discount:  discount,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
	}
	if row.Description != nil {
		o.Description = *row.Description
	}
	return o, nil
}
