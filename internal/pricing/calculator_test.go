package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscounted_Percentage(t *testing.T) {
	t.Run("20 percent off", func(t *testing.T) {
		assertPrice(t, "80", Discounted(dec("100"), Percentage{Rate: dec("20")}))
	})

	t.Run("fractional rate keeps precision", func(t *testing.T) {
		// 12.5% of 2499 = 312.375
		assertPrice(t, "2186.625", Discounted(dec("2499"), Percentage{Rate: dec("12.5")}))
	})

	t.Run("100 percent is free", func(t *testing.T) {
		assert.True(t, Discounted(dec("100"), Percentage{Rate: dec("100")}).IsZero())
	})

	t.Run("over 100 percent clamps to zero", func(t *testing.T) {
		assert.True(t, Discounted(dec("100"), Percentage{Rate: dec("150")}).IsZero())
	})

	t.Run("negative rate never raises the price", func(t *testing.T) {
		assertPrice(t, "100", Discounted(dec("100"), Percentage{Rate: dec("-10")}))
	})
}

func TestDiscounted_Amount(t *testing.T) {
	t.Run("fixed amount off", func(t *testing.T) {
		assertPrice(t, "85", Discounted(dec("100"), Amount{Off: dec("15")}))
	})

	t.Run("amount above price clamps to zero", func(t *testing.T) {
		assert.True(t, Discounted(dec("10"), Amount{Off: dec("15")}).IsZero())
	})

	t.Run("negative amount never raises the price", func(t *testing.T) {
		assertPrice(t, "10", Discounted(dec("10"), Amount{Off: dec("-5")}))
	})
}

func TestDiscounted_NilDiscount(t *testing.T) {
	assertPrice(t, "42", Discounted(dec("42"), nil))
}

func TestDiscounted_Bounds(t *testing.T) {
	bases := []string{"0", "0.01", "9.99", "100", "12345.67"}
	discounts := []Discount{
		Percentage{Rate: dec("0")},
		Percentage{Rate: dec("33.3")},
		Percentage{Rate: dec("100")},
		Percentage{Rate: dec("250")},
		Amount{Off: dec("0")},
		Amount{Off: dec("5")},
		Amount{Off: dec("1000000")},
	}

	for _, b := range bases {
		base := dec(b)
		for _, d := range discounts {
			got := Discounted(base, d)
			assert.False(t, got.IsNegative(), "base %s %s %s went negative", b, d.Type(), d.Value())
			assert.True(t, got.LessThanOrEqual(base), "base %s %s %s exceeded base", b, d.Type(), d.Value())
		}
	}
}
