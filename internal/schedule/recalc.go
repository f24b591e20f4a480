package schedule

import (
	"sync"
	"time"

	"brickvale-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// unitLocks serializes recalculations per unit. The delete+regenerate pair
// is only safe with a single writer; the caller's transaction protects
// against partial failure, this protects against a concurrent sibling.
// Entries are kept for the process lifetime: one mutex per unit ever
// recalculated, a few dozen bytes each, bounded by the unit count.
var unitLocks sync.Map

func lockUnit(id uuid.UUID) *sync.Mutex {
	mu, _ := unitLocks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// PaidTotal sums the unit's settled, non-deleted payments.
func PaidTotal(tx *gorm.DB, unitID uuid.UUID) (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	err := tx.Model(&models.Payment{}).
		Where("unit_id = ? AND status = ? AND deleted = ?", unitID, models.PaymentPaid, false).
		Pluck("amount", &amounts).Error
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total, nil
}

// Recalculate replaces the unit's unpaid obligations with a schedule
// regenerated from its current terms. Paid rows and soft-deleted rows are
// never touched; unpaid rows are fungible until settled. Idempotent for
// unchanged terms and payment history. Must run inside the caller's
// transaction: a partial failure is rolled back as a whole and the caller
// simply retries.
func Recalculate(tx *gorm.DB, unit *models.Unit, now time.Time) error {
	mu := lockUnit(unit.ID)
	mu.Lock()
	defer mu.Unlock()

	paid, err := PaidTotal(tx, unit.ID)
	if err != nil {
		return err
	}

	if err := tx.
		Where("unit_id = ? AND status = ? AND deleted = ?", unit.ID, models.PaymentNotPaid, false).
		Delete(&models.Payment{}).Error; err != nil {
		return err
	}

	obligations, err := Generate(unit.ID, TermsOf(unit), paid, now)
	if err != nil {
		return err
	}
	if len(obligations) == 0 {
		return nil
	}
	return tx.Create(&obligations).Error
}
