package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var refDate = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func assertPrice(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func serviceItem(id, price string, categoryID *string) Item {
	return Item{ID: id, Kind: TargetService, BasePrice: dec(price), CategoryID: categoryID}
}

func percentOffer(id, rate string) Offer {
	return Offer{
		ID:       id,
		Name:     "offer " + id,
		Target:   TargetService,
		Scope:    AllScope{},
		Discount: Percentage{Rate: dec(rate)},
	}
}

func amountOffer(id, off string) Offer {
	return Offer{
		ID:       id,
		Name:     "offer " + id,
		Target:   TargetService,
		Scope:    AllScope{},
		Discount: Amount{Off: dec(off)},
	}
}
