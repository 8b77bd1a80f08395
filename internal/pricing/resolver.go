package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fekuna/omnipos-pricing-service/internal/pkg/clock"
)

// Result is the outcome of resolving one item against a set of offers.
type Result struct {
	BasePrice    decimal.Decimal
	FinalPrice   decimal.Decimal
	AppliedOffer *Offer
}

// AmountOff is BasePrice - FinalPrice.
func (r Result) AmountOff() decimal.Decimal {
	return r.BasePrice.Sub(r.FinalPrice)
}

// Resolve picks the offer giving the lowest price for item at ref.
//
// Offers are scanned once in the given order. A candidate replaces the
// current best only when strictly cheaper, so among offers yielding the same
// price the first one wins. Callers that need repeatable tie-breaks must pass
// offers in a stable order.
func Resolve(item Item, offers []Offer, ref time.Time) Result {
	res := Result{
		BasePrice:  item.BasePrice,
		FinalPrice: item.BasePrice,
	}

	for i := range offers {
		offer := offers[i]
		if !IsActiveAt(offer, ref) || !AppliesTo(offer, item) {
			continue
		}

		candidate := Discounted(item.BasePrice, offer.Discount)
		if candidate.LessThan(res.FinalPrice) {
			res.FinalPrice = candidate
			res.AppliedOffer = &offer
		}
	}

	return res
}

// ResolveNow is Resolve with the reference date taken from clk.
func ResolveNow(item Item, offers []Offer, clk clock.Clock) Result {
	return Resolve(item, offers, clk.Now())
}
