package pricing

import "time"

// PriceView is the API-facing price of one catalog item.
type PriceView struct {
	BasePrice    float64       `json:"basePrice"`
	FinalPrice   float64       `json:"finalPrice"`
	AppliedOffer *AppliedOffer `json:"appliedOffer"`
}

// AppliedOffer is the public part of the winning offer plus the amount it
// took off the base price.
type AppliedOffer struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	DiscountType  string     `json:"discountType"`
	DiscountValue float64    `json:"discountValue"`
	Scope         string     `json:"scope"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	AmountOff     float64    `json:"amountOff"`
}

// Compose shapes a Result into the API-facing PriceView. Only the applied
// offer is exposed, and amountOff is computed in decimal before conversion.
func Compose(res Result) PriceView {
	view := PriceView{
		BasePrice:  res.BasePrice.InexactFloat64(),
		FinalPrice: res.FinalPrice.InexactFloat64(),
	}

	offer := res.AppliedOffer
	if offer == nil {
		return view
	}

	applied := &AppliedOffer{
		ID:          offer.ID,
		Name:        offer.Name,
		Description: offer.Description,
		StartDate:   offer.StartDate,
		EndDate:     offer.EndDate,
		AmountOff:   res.AmountOff().InexactFloat64(),
	}
	if offer.Discount != nil {
		applied.DiscountType = string(offer.Discount.Type())
		applied.DiscountValue = offer.Discount.Value().InexactFloat64()
	}
	if offer.Scope != nil {
		applied.Scope = string(offer.Scope.Kind())
	}
	view.AppliedOffer = applied

	return view
}
