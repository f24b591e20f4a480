package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestRoundCents_HalfUp(t *testing.T) {
	assert.Equal(t, "10.01", RoundCents(dec("10.005")).String())
	assert.Equal(t, "10", RoundCents(dec("10.004")).String())
	assert.Equal(t, "0.33", RoundCents(dec("1").Div(dec("3"))).String())
}

func TestApplyDiscount(t *testing.T) {
	assert.Equal(t, "900000", ApplyDiscount(dec("1000000"), dec("10")).String())
	assert.Equal(t, "1000000", ApplyDiscount(dec("1000000"), decimal.Zero).String())
	assert.Equal(t, "0", ApplyDiscount(dec("500"), dec("100")).String())
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "25", Percentage(dec("25"), dec("100")).String())
	assert.Equal(t, "33.33", Percentage(dec("1"), dec("3")).String())
	assert.True(t, Percentage(dec("5"), decimal.Zero).IsZero())
}

func TestClampZero(t *testing.T) {
	assert.True(t, ClampZero(dec("-3")).IsZero())
	assert.Equal(t, "3", ClampZero(dec("3")).String())
}

func TestSplitEven(t *testing.T) {
	assert.Equal(t, "2000000", SplitEven(dec("8000000"), 4).String())
	assert.Equal(t, "33.33", SplitEven(dec("100"), 3).String())
	// negative outstanding clamps to zero, never a negative installment
	assert.True(t, SplitEven(dec("-100"), 3).IsZero())
	assert.True(t, SplitEven(dec("100"), 0).IsZero())
}
