package pricing

import "time"

// AppliesTo reports whether offer's scope covers item. Offers for a
// different item kind never apply.
func AppliesTo(offer Offer, item Item) bool {
	if offer.Target != item.Kind || offer.Scope == nil {
		return false
	}
	return offer.Scope.covers(item)
}

// IsActiveAt reports whether ref falls inside the offer's date window.
// Both bounds are inclusive; a nil bound is open.
func IsActiveAt(offer Offer, ref time.Time) bool {
	if offer.StartDate != nil && ref.Before(*offer.StartDate) {
		return false
	}
	if offer.EndDate != nil && ref.After(*offer.EndDate) {
		return false
	}
	return true
}
