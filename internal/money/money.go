// Package money holds the decimal arithmetic shared by the schedule
// generator, projections, and dashboard. All monetary values are
// shopspring decimals; binary floating point is never used for amounts.
package money

import "github.com/shopspring/decimal"

func init() {
	// API consumers expect bare JSON numbers for amounts, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

var (
	hundred = decimal.NewFromInt(100)
)

// RoundCents rounds half-up to 2 decimal places.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ApplyDiscount returns amount reduced by a percentage discount (0-100).
func ApplyDiscount(amount, discount decimal.Decimal) decimal.Decimal {
	return amount.Sub(amount.Mul(discount).Div(hundred))
}

// Percentage returns part/whole as a percentage rounded to 2 decimal
// places, or zero when whole is zero.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return RoundCents(part.Div(whole).Mul(hundred))
}

// ClampZero returns d, or zero if d is negative.
func ClampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// SplitEven divides total into n equal shares rounded to cents. Non-positive
// totals and n < 1 yield zero.
func SplitEven(total decimal.Decimal, n int) decimal.Decimal {
	if n < 1 {
		return decimal.Zero
	}
	return RoundCents(ClampZero(total).Div(decimal.NewFromInt(int64(n))))
}
