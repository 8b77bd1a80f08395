package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Discounted returns base after applying d. The result is always within
// [0, base]; a nil discount leaves the price unchanged.
func Discounted(base decimal.Decimal, d Discount) decimal.Decimal {
	if d == nil {
		return base
	}
	return clamp(d.apply(base), base)
}

func (p Percentage) apply(base decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(p.Rate.Div(hundred))
	if factor.IsNegative() {
		factor = decimal.Zero
	}
	return base.Mul(factor)
}

func (a Amount) apply(base decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, base.Sub(a.Off))
}

func clamp(price, base decimal.Decimal) decimal.Decimal {
	if price.IsNegative() {
		return decimal.Zero
	}
	if price.GreaterThan(base) {
		return base
	}
	return price
}
