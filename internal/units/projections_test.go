package units

import (
	"testing"
	"time"

	"brickvale-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func planUnit(amount, discount, initial string, installment int) *models.Unit {
	return &models.Unit{
		Name:                   "Plot 12",
		Amount:                 dec(amount),
		Discount:               dec(discount),
		ExpectedInitialPayment: dec(initial),
		Installment:            installment,
		PaymentPlan:            true,
		PaymentDuration:        models.DurationMonthly,
	}
}

func paid(amount string) models.Payment {
	now := time.Now()
	return models.Payment{Amount: dec(amount), Status: models.PaymentPaid, PaymentDate: &now}
}

func TestSummarize_NoPaymentsYet(t *testing.T) {
	u := planUnit("10000000", "0", "2000000", 4)
	s := Summarize(u, nil)

	assert.Equal(t, "10000000", s.Total.String())
	assert.Equal(t, "8000000", s.Outstanding.String())
	assert.False(t, s.Balanced)
	assert.Equal(t, BalanceUnderpaid, s.MoreOrLess)
	assert.Equal(t, "8000000", s.InstallmentDiff.String())
	assert.Equal(t, "2000000", s.InstallmentAmount.String())
	assert.True(t, s.PercentagePaid.IsZero())
	assert.Equal(t, "100", s.PercentageUnpaid.String())
	assert.Equal(t, 4, s.TotalSchedules)
	assert.Equal(t, models.DurationMonthly, s.Duration)
}

func TestSummarize_WithDiscountAndDeposits(t *testing.T) {
	u := planUnit("1000000", "10", "0", 3)
	payments := []models.Payment{
		paid("300000"),
		{Amount: dec("50000"), Status: models.PaymentNotPaid},
	}
	s := Summarize(u, payments)

	assert.Equal(t, "900000", s.Total.String())
	assert.Equal(t, "300000", s.TotalDeposit.String())
	assert.Equal(t, "600000", s.Outstanding.String())
	assert.Equal(t, "600000", s.TotalUnpaid.String())
	assert.Equal(t, "33.33", s.PercentagePaid.String())
	assert.Equal(t, "66.67", s.PercentageUnpaid.String())
	assert.Equal(t, "200000", s.InstallmentAmount.String())
}

func TestSummarize_IgnoresDeletedPaidRows(t *testing.T) {
	u := planUnit("1000", "0", "0", 1)
	gone := paid("400")
	gone.Deleted = true
	s := Summarize(u, []models.Payment{gone, paid("100")})
	assert.Equal(t, "100", s.TotalDeposit.String())
}

func TestSummarize_Overpaid(t *testing.T) {
	u := planUnit("1000", "0", "0", 2)
	s := Summarize(u, []models.Payment{paid("1200")})

	assert.True(t, s.Balanced)
	assert.Equal(t, BalanceOverpaid, s.MoreOrLess)
	assert.Equal(t, "200", s.InstallmentDiff.String())
	assert.True(t, s.InstallmentAmount.IsZero())
	assert.Equal(t, "120", s.PercentagePaid.String())
	assert.True(t, s.PercentageUnpaid.IsZero())
}

func TestSummarize_ExactlySettled(t *testing.T) {
	u := planUnit("1000", "0", "0", 2)
	s := Summarize(u, []models.Payment{paid("1000")})
	assert.True(t, s.Balanced)
	assert.Equal(t, BalanceEqual, s.MoreOrLess)
	assert.True(t, s.InstallmentDiff.IsZero())
}

func TestSummarize_BalancedIffOutstandingNonPositive(t *testing.T) {
	cases := []struct {
		paidAmount string
		balanced   bool
	}{
		{"0.01", false},
		{"999.99", false},
		{"1000", true},
		{"1000.01", true},
	}
	for _, tc := range cases {
		u := planUnit("1000", "0", "0", 1)
		s := Summarize(u, []models.Payment{paid(tc.paidAmount)})
		assert.Equal(t, tc.balanced, s.Balanced, "paid %s", tc.paidAmount)
		assert.Equal(t, tc.balanced, !s.Outstanding.IsPositive())
	}
}

func TestWarranty_NoHandoverDate(t *testing.T) {
	u := planUnit("1000", "0", "0", 1)
	w := Warranty(u, time.Now())
	assert.False(t, w.IsValid)
	assert.Nil(t, w.ExpireAt)
}

func TestWarranty_Window(t *testing.T) {
	handover := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	u := planUnit("1000", "0", "0", 1)
	u.HandoverDate = &handover
	u.WarrantyPeriod = 12

	// 12 * 30 days = 360 days after handover
	wantExpire := handover.Add(360 * 24 * time.Hour)

	w := Warranty(u, wantExpire.AddDate(0, 0, -1))
	require.NotNil(t, w.ExpireAt)
	assert.Equal(t, wantExpire, *w.ExpireAt)
	assert.True(t, w.IsValid)

	// the expiry day itself is still covered
	assert.True(t, Warranty(u, wantExpire).IsValid)
	assert.False(t, Warranty(u, wantExpire.AddDate(0, 0, 1)).IsValid)
}

func TestGraphData(t *testing.T) {
	u := planUnit("1000000", "10", "0", 3)
	points := GraphData(u)
	require.Len(t, points, 3)
	for i, p := range points {
		assert.Equal(t, i+1, p.Month)
		assert.Equal(t, "300000", p.Amount.String())
	}
}

func TestGraphData_ZeroInstallments(t *testing.T) {
	u := planUnit("1000", "0", "0", 0)
	assert.Empty(t, GraphData(u))
}
