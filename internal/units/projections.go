package units

import (
	"time"

	"brickvale-backend/internal/models"
	"brickvale-backend/internal/money"

	"github.com/shopspring/decimal"
)

// Comparison labels returned in PaymentSummary.MoreOrLess.
const (
	BalanceEqual     = "equal"
	BalanceOverpaid  = "overpaid"
	BalanceUnderpaid = "underpaid"
)

// PaymentSummary is the derived financial state of a unit. All monetary
// fields are rounded to cents before return.
type PaymentSummary struct {
	Total             decimal.Decimal `json:"total"`
	Outstanding       decimal.Decimal `json:"outstanding"`
	TotalDeposit      decimal.Decimal `json:"total_deposit"`
	TotalUnpaid       decimal.Decimal `json:"total_unpaid"`
	Balanced          bool            `json:"balanced"`
	MoreOrLess        string          `json:"more_or_less"`
	PercentagePaid    decimal.Decimal `json:"percentage_paid"`
	PercentageUnpaid  decimal.Decimal `json:"percentage_unpaid"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	TotalSchedules    int             `json:"total_sch"`
	InstallmentDiff   decimal.Decimal `json:"installment_diff"`
	Duration          string          `json:"duration"`
}

// WarrantyInfo is the derived warranty window of a unit.
type WarrantyInfo struct {
	ExpireAt *time.Time `json:"expire_at"`
	IsValid  bool       `json:"isValid"`
}

// GraphPoint is one bar of the amortization chart.
type GraphPoint struct {
	Month  int             `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// paidTotal sums the settled, non-deleted payments in the set.
func paidTotal(payments []models.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Status == models.PaymentPaid && !p.Deleted {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// Summarize computes the payment summary from a unit's terms and its live
// payment set. Pure: no persistence access, no side effects.
func Summarize(u *models.Unit, payments []models.Payment) PaymentSummary {
	total := money.ApplyDiscount(u.Amount, u.Discount)
	deposit := paidTotal(payments)
	outstanding := total.Sub(deposit).Sub(u.ExpectedInitialPayment)

	installmentAmount := decimal.Zero
	if u.Installment > 0 {
		installmentAmount = money.SplitEven(outstanding, u.Installment)
	}

	percentagePaid := money.Percentage(deposit, total)
	percentageUnpaid := decimal.NewFromInt(100).Sub(percentagePaid)
	if percentageUnpaid.IsNegative() {
		percentageUnpaid = decimal.Zero
	}

	moreOrLess := BalanceEqual
	diff := decimal.Zero
	switch {
	case outstanding.IsNegative():
		moreOrLess = BalanceOverpaid
		diff = outstanding.Abs()
	case outstanding.IsPositive():
		moreOrLess = BalanceUnderpaid
		diff = outstanding
	}

	return PaymentSummary{
		Total:             money.RoundCents(total),
		Outstanding:       money.RoundCents(outstanding),
		TotalDeposit:      money.RoundCents(deposit),
		TotalUnpaid:       money.RoundCents(total.Sub(deposit)),
		Balanced:          !outstanding.IsPositive(),
		MoreOrLess:        moreOrLess,
		PercentagePaid:    percentagePaid,
		PercentageUnpaid:  money.RoundCents(percentageUnpaid),
		InstallmentAmount: installmentAmount,
		TotalSchedules:    u.Installment,
		InstallmentDiff:   money.RoundCents(diff),
		Duration:          u.PaymentDuration,
	}
}

// warrantyMonthDays approximates a month of warranty. The window is a fixed
// 30-day month, not calendar-accurate.
const warrantyMonthDays = 30

// Warranty computes the warranty window as of today. A unit without a
// handover date has no warranty.
func Warranty(u *models.Unit, today time.Time) WarrantyInfo {
	if u.HandoverDate == nil {
		return WarrantyInfo{IsValid: false, ExpireAt: nil}
	}
	expireAt := u.HandoverDate.Add(time.Duration(u.WarrantyPeriod) * warrantyMonthDays * 24 * time.Hour)
	y1, m1, d1 := today.Date()
	y2, m2, d2 := expireAt.Date()
	todayDate := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	expireDate := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return WarrantyInfo{ExpireAt: &expireAt, IsValid: !todayDate.After(expireDate)}
}

// GraphData produces one chart point per installment period. The balance
// charted is the discounted total less the expected initial payment, spread
// evenly across periods.
func GraphData(u *models.Unit) []GraphPoint {
	if u.Installment <= 0 {
		return []GraphPoint{}
	}
	balance := money.ApplyDiscount(u.Amount, u.Discount).Sub(u.ExpectedInitialPayment)
	per := money.RoundCents(balance.Div(decimal.NewFromInt(int64(u.Installment))))
	points := make([]GraphPoint, u.Installment)
	for i := range points {
		points[i] = GraphPoint{Month: i + 1, Amount: per}
	}
	return points
}
