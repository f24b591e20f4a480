package payments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brickvale-backend/internal/dashboard"
	"brickvale-backend/internal/models"
	"brickvale-backend/internal/money"
	"brickvale-backend/internal/pkg/paging"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("payment not found")
	ErrUnitNotFound    = errors.New("unit not found")
	ErrInvalidStatus   = errors.New("status must be paid, not_paid or overdue")
	ErrReceiptRequired = errors.New("a receipt is required to mark a payment paid")
	ErrInvalidAmount   = errors.New("amount cannot be negative")
)

// Notifier signals "notify user X of event Y"; delivery is someone else's
// problem.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, title, body string, metadata map[string]interface{}) error
}

type Service struct {
	DB       *gorm.DB
	Notifier Notifier
	Cache    *dashboard.Cache
}

// CreateInput is the manual create-payment request body.
type CreateInput struct {
	UnitID           uuid.UUID       `json:"unit_id" validate:"required"`
	Amount           decimal.Decimal `json:"amount" validate:"required"`
	DueDate          *time.Time      `json:"due_date"`
	ReasonForPayment *string         `json:"reason_for_payment"`
}

// UpdateInput carries the patchable payment fields.
type UpdateInput struct {
	Amount           *decimal.Decimal `json:"amount"`
	DueDate          *time.Time       `json:"due_date"`
	Status           *string          `json:"status"`
	ReceiptID        *uuid.UUID       `json:"receipt_id"`
	ReasonForPayment *string          `json:"reason_for_payment"`
}

func validStatus(s string) bool {
	switch s {
	case models.PaymentPaid, models.PaymentNotPaid, models.PaymentOverdue:
		return true
	}
	return false
}

// Create records a manual payment obligation against a unit.
func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Payment, error) {
	if input.Amount.IsNegative() {
		return nil, ErrInvalidAmount
	}
	var unit models.Unit
	err := s.DB.WithContext(ctx).
		Where("id = ? AND deleted = ?", input.UnitID, false).
		First(&unit).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}

	payment := models.Payment{
		UnitID:           input.UnitID,
		Amount:           money.RoundCents(input.Amount),
		DueDate:          input.DueDate,
		Status:           models.PaymentNotPaid,
		ReasonForPayment: input.ReasonForPayment,
	}
	if err := s.DB.WithContext(ctx).Create(&payment).Error; err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx)
	return &payment, nil
}

// List returns non-deleted payments, newest due first.
func (s *Service) List(ctx context.Context, p paging.Params) ([]models.Payment, int64, error) {
	query := s.DB.WithContext(ctx).Model(&models.Payment{}).
		Where("deleted = ?", false).
		Order("due_date DESC")
	var rows []models.Payment
	total, err := paging.Find(query, p, &rows)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListByUnit returns a unit's non-deleted payments in due order.
func (s *Service) ListByUnit(ctx context.Context, unitID uuid.UUID, p paging.Params) ([]models.Payment, int64, error) {
	query := s.DB.WithContext(ctx).Model(&models.Payment{}).
		Where("unit_id = ? AND deleted = ?", unitID, false).
		Order("due_date")
	var rows []models.Payment
	total, err := paging.Find(query, p, &rows)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Get returns a single non-deleted payment.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := s.DB.WithContext(ctx).
		Where("id = ? AND deleted = ?", id, false).
		First(&payment).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// Update patches a payment, enforcing the status invariants: paid requires
// a receipt and stamps payment_date; leaving paid clears both.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Payment, error) {
	payment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, ErrInvalidAmount
		}
		payment.Amount = money.RoundCents(*input.Amount)
	}
	if input.DueDate != nil {
		payment.DueDate = input.DueDate
	}
	if input.ReasonForPayment != nil {
		payment.ReasonForPayment = input.ReasonForPayment
	}
	if input.ReceiptID != nil {
		payment.ReceiptID = input.ReceiptID
	}

	becamePaid := false
	if input.Status != nil && *input.Status != payment.Status {
		if !validStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		switch *input.Status {
		case models.PaymentPaid:
			if payment.ReceiptID == nil {
				return nil, ErrReceiptRequired
			}
			now := time.Now()
			payment.PaymentDate = &now
			becamePaid = true
		default:
			// leaving paid: the settlement evidence goes with it. A
			// receipt staged on an unpaid row survives other moves.
			if payment.Status == models.PaymentPaid {
				payment.PaymentDate = nil
				payment.ReceiptID = nil
			}
		}
		payment.Status = *input.Status
	}

	if err := s.DB.WithContext(ctx).Save(payment).Error; err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx)

	if becamePaid {
		s.notifyPaid(ctx, payment)
	}
	return payment, nil
}

// notifyPaid tells the owning client their payment was recorded. Best
// effort only.
func (s *Service) notifyPaid(ctx context.Context, payment *models.Payment) {
	if s.Notifier == nil {
		return
	}
	var unit models.Unit
	if err := s.DB.WithContext(ctx).First(&unit, "id = ?", payment.UnitID).Error; err != nil {
		return
	}
	if unit.ClientID == nil {
		return
	}
	err := s.Notifier.Notify(ctx, *unit.ClientID,
		"Payment received",
		fmt.Sprintf("Your payment of %s for %s has been recorded.", payment.Amount.StringFixed(2), unit.Name),
		map[string]interface{}{
			"unit_id":    unit.ID.String(),
			"payment_id": payment.ID.String(),
		})
	if err != nil {
		log.Warn().Err(err).Str("payment_id", payment.ID.String()).Msg("payment notification failed")
	}
}

// SoftDelete marks the payment deleted with a reason.
func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID, reason string) error {
	payment, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	err = s.DB.WithContext(ctx).Model(payment).Updates(map[string]interface{}{
		"deleted":           true,
		"reason_for_delete": reason,
	}).Error
	if err != nil {
		return err
	}
	s.Cache.Invalidate(ctx)
	return nil
}
