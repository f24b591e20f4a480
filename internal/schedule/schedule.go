// Package schedule derives a unit's payment obligations from its commercial
// terms and reconciles them when the terms change.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"brickvale-backend/internal/models"
	"brickvale-backend/internal/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInvalidDiscount    = errors.New("discount must be between 0 and 100")
	ErrInvalidInstallment = errors.New("installment count must be at least 1 on a payment plan")
	ErrNegativeInitial    = errors.New("expected initial payment cannot be negative")
)

// InitialPaymentLabel marks the obligation generated for the expected
// initial payment. The initial payment is recorded as payable, not
// pre-marked paid; it settles like any other obligation.
const InitialPaymentLabel = "Initial payment"

// Terms are the commercial terms a schedule is generated from.
type Terms struct {
	Amount                 decimal.Decimal
	Discount               decimal.Decimal
	ExpectedInitialPayment decimal.Decimal
	Installment            int
	Duration               string
	PurchaseDate           *time.Time
	PaymentPlan            bool
}

// TermsOf extracts the schedule-relevant terms from a unit.
func TermsOf(u *models.Unit) Terms {
	return Terms{
		Amount:                 u.Amount,
		Discount:               u.Discount,
		ExpectedInitialPayment: u.ExpectedInitialPayment,
		Installment:            u.Installment,
		Duration:               u.PaymentDuration,
		PurchaseDate:           u.PurchaseDate,
		PaymentPlan:            u.PaymentPlan,
	}
}

// Validate rejects terms the generator must never see.
func (t Terms) Validate() error {
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if t.Discount.IsNegative() || t.Discount.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidDiscount
	}
	if t.ExpectedInitialPayment.IsNegative() {
		return ErrNegativeInitial
	}
	if t.PaymentPlan && t.Installment < 1 {
		return ErrInvalidInstallment
	}
	return nil
}

// stepMonths maps a cadence to the months between consecutive obligations.
func stepMonths(duration string) int {
	switch duration {
	case models.DurationQuarterly:
		return 3
	case models.DurationBiAnnually:
		return 6
	case models.DurationAnnually:
		return 12
	default:
		return 1
	}
}

// Generate produces the ordered obligations for a unit. alreadyPaid is the
// sum of the unit's settled payments (zero on first generation); due dates
// are offset from the purchase date, or from now when no purchase date is
// recorded. The output is deterministic for identical inputs.
func Generate(unitID uuid.UUID, t Terms, alreadyPaid decimal.Decimal, now time.Time) ([]models.Payment, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	ref := now
	if t.PurchaseDate != nil {
		ref = *t.PurchaseDate
	}

	if !t.PaymentPlan {
		label := "Full payment"
		due := ref
		return []models.Payment{{
			UnitID:           unitID,
			Amount:           money.RoundCents(t.Amount),
			DueDate:          &due,
			Status:           models.PaymentNotPaid,
			ReasonForPayment: &label,
		}}, nil
	}

	total := money.ApplyDiscount(t.Amount, t.Discount)
	outstanding := total.Sub(alreadyPaid).Sub(t.ExpectedInitialPayment)
	per := money.SplitEven(outstanding, t.Installment)
	step := stepMonths(t.Duration)

	out := make([]models.Payment, 0, t.Installment+1)
	if t.ExpectedInitialPayment.IsPositive() {
		label := InitialPaymentLabel
		due := ref
		out = append(out, models.Payment{
			UnitID:           unitID,
			Amount:           money.RoundCents(t.ExpectedInitialPayment),
			DueDate:          &due,
			Status:           models.PaymentNotPaid,
			ReasonForPayment: &label,
		})
	}
	for i := 1; i <= t.Installment; i++ {
		label := fmt.Sprintf("Installment %d of %d", i, t.Installment)
		due := ref.AddDate(0, i*step, 0)
		out = append(out, models.Payment{
			UnitID:           unitID,
			Amount:           per,
			DueDate:          &due,
			Status:           models.PaymentNotPaid,
			ReasonForPayment: &label,
		})
	}
	return out, nil
}
