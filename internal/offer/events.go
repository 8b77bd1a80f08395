package offer

import (
	"time"

	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

const EventOfferChanged = "OfferChanged"

// OfferChangedEvent is published by the offer administration service
// whenever an offer is created, edited, toggled or deleted.
type OfferChangedEvent struct {
	EventID   string              `json:"event_id"`
	EventType string              `json:"event_type"`
	Payload   OfferChangedPayload `json:"payload"`
	Timestamp time.Time           `json:"timestamp"`
}

type OfferChangedPayload struct {
	OfferID    string `json:"offer_id"`
	BrandID    string `json:"brand_id"`
	LocationID string `json:"location_id"`
	// Target is empty when the change may affect both item kinds, e.g. an
	// offer whose target was edited.
	Target string `json:"target"`
}

func (p OfferChangedPayload) Tenant() tenant.Tenant {
	return tenant.Tenant{BrandID: p.BrandID, LocationID: p.LocationID}
}

// Targets lists the item kinds whose cached offers the change invalidates.
func (p OfferChangedPayload) Targets() []pricing.Target {
	if t, err := pricing.ParseTarget(p.Target); err == nil {
		return []pricing.Target{t}
	}
	return []pricing.Target{pricing.TargetService, pricing.TargetProduct}
}
