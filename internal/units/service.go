package units

import (
	"context"
	"errors"
	"time"

	"brickvale-backend/internal/dashboard"
	"brickvale-backend/internal/models"
	"brickvale-backend/internal/schedule"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("unit not found")
	ErrNotAClient = errors.New("client_id does not belong to a client")
)

type Service struct {
	DB    *gorm.DB
	Cache *dashboard.Cache
}

// CreateInput is the create-unit request body.
type CreateInput struct {
	Name                   string          `json:"name" validate:"required"`
	Amount                 decimal.Decimal `json:"amount" validate:"required"`
	ExpectedInitialPayment decimal.Decimal `json:"expected_initial_payment"`
	Discount               decimal.Decimal `json:"discount"`
	Comments               *string         `json:"comments"`
	Type                   *string         `json:"type"`
	PurchaseDate           *time.Time      `json:"purchase_date"`
	Installment            int             `json:"installment"`
	PaymentPlan            bool            `json:"payment_plan"`
	PaymentDuration        string          `json:"payment_duration"`
	HandoverDate           *time.Time      `json:"handover_date"`
	WarrantyPeriod         *int            `json:"warranty_period"`
	DevelopmentStatus      *string         `json:"development_status"`
	ClientID               *uuid.UUID      `json:"client_id"`
	ProjectID              *uuid.UUID      `json:"project_id"`
}

// UpdateInput carries the patchable unit fields. Changing amount, expected
// initial payment, or installment count on a payment-plan unit triggers a
// schedule recalculation.
type UpdateInput struct {
	Name                   *string          `json:"name"`
	Amount                 *decimal.Decimal `json:"amount"`
	ExpectedInitialPayment *decimal.Decimal `json:"expected_initial_payment"`
	Discount               *decimal.Decimal `json:"discount"`
	Comments               *string          `json:"comments"`
	Type                   *string          `json:"type"`
	PurchaseDate           *time.Time       `json:"purchase_date"`
	Installment            *int             `json:"installment"`
	PaymentPlan            *bool            `json:"payment_plan"`
	PaymentDuration        *string          `json:"payment_duration"`
	HandoverDate           *time.Time       `json:"handover_date"`
	WarrantyPeriod         *int             `json:"warranty_period"`
	DevelopmentStatus      *string          `json:"development_status"`
	ClientID               *uuid.UUID       `json:"client_id"`
	ProjectID              *uuid.UUID       `json:"project_id"`
}

// Create persists a unit and generates its initial payment schedule in one
// transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Unit, error) {
	unit := models.Unit{
		Name:                   input.Name,
		Amount:                 input.Amount,
		ExpectedInitialPayment: input.ExpectedInitialPayment,
		Discount:               input.Discount,
		Comments:               input.Comments,
		Type:                   input.Type,
		PurchaseDate:           input.PurchaseDate,
		Installment:            input.Installment,
		PaymentPlan:            input.PaymentPlan,
		PaymentDuration:        input.PaymentDuration,
		HandoverDate:           input.HandoverDate,
		ClientID:               input.ClientID,
		ProjectID:              input.ProjectID,
		WarrantyPeriod:         12,
		DevelopmentStatus:      models.DevelopmentNotStarted,
	}
	if unit.Installment == 0 {
		unit.Installment = 1
	}
	if unit.PaymentDuration == "" {
		unit.PaymentDuration = models.DurationMonthly
	}
	if input.WarrantyPeriod != nil {
		unit.WarrantyPeriod = *input.WarrantyPeriod
	}
	if input.DevelopmentStatus != nil {
		unit.DevelopmentStatus = *input.DevelopmentStatus
	}

	if err := schedule.TermsOf(&unit).Validate(); err != nil {
		return nil, err
	}

	if input.ClientID != nil {
		if err := s.checkClientRole(ctx, *input.ClientID); err != nil {
			return nil, err
		}
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&unit).Error; err != nil {
			return err
		}
		return schedule.Recalculate(tx, &unit, time.Now())
	})
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx)
	return &unit, nil
}

func (s *Service) checkClientRole(ctx context.Context, clientID uuid.UUID) error {
	var client models.User
	err := s.DB.WithContext(ctx).
		Where("id = ? AND deleted = ?", clientID, false).
		First(&client).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotAClient
		}
		return err
	}
	if client.Role != models.RoleClient {
		return ErrNotAClient
	}
	return nil
}

// Update patches a unit. When a term that feeds the schedule changes on a
// payment-plan unit, the unpaid schedule is regenerated atomically with the
// update.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Unit, error) {
	unit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	termsChanged := false
	if input.Amount != nil && !input.Amount.Equal(unit.Amount) {
		unit.Amount = *input.Amount
		termsChanged = true
	}
	if input.ExpectedInitialPayment != nil && !input.ExpectedInitialPayment.Equal(unit.ExpectedInitialPayment) {
		unit.ExpectedInitialPayment = *input.ExpectedInitialPayment
		termsChanged = true
	}
	if input.Installment != nil && *input.Installment != unit.Installment {
		unit.Installment = *input.Installment
		termsChanged = true
	}
	if input.Name != nil {
		unit.Name = *input.Name
	}
	if input.Discount != nil {
		unit.Discount = *input.Discount
	}
	if input.Comments != nil {
		unit.Comments = input.Comments
	}
	if input.Type != nil {
		unit.Type = input.Type
	}
	if input.PurchaseDate != nil {
		unit.PurchaseDate = input.PurchaseDate
	}
	if input.PaymentPlan != nil {
		unit.PaymentPlan = *input.PaymentPlan
	}
	if input.PaymentDuration != nil {
		unit.PaymentDuration = *input.PaymentDuration
	}
	if input.HandoverDate != nil {
		unit.HandoverDate = input.HandoverDate
	}
	if input.WarrantyPeriod != nil {
		unit.WarrantyPeriod = *input.WarrantyPeriod
	}
	if input.DevelopmentStatus != nil {
		unit.DevelopmentStatus = *input.DevelopmentStatus
	}
	if input.ClientID != nil {
		if err := s.checkClientRole(ctx, *input.ClientID); err != nil {
			return nil, err
		}
		unit.ClientID = input.ClientID
	}
	if input.ProjectID != nil {
		unit.ProjectID = input.ProjectID
	}

	if err := schedule.TermsOf(unit).Validate(); err != nil {
		return nil, err
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(unit).Error; err != nil {
			return err
		}
		if termsChanged && unit.PaymentPlan {
			return schedule.Recalculate(tx, unit, time.Now())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx)
	return unit, nil
}

// Get returns a non-deleted unit with its project and client preloaded.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	var unit models.Unit
	err := s.DB.WithContext(ctx).
		Preload("Project").
		Preload("Client").
		Preload("MediaFiles", "deleted = ?", false).
		Where("id = ? AND deleted = ?", id, false).
		First(&unit).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

// List returns all non-deleted units.
func (s *Service) List(ctx context.Context) ([]models.Unit, error) {
	var units []models.Unit
	err := s.DB.WithContext(ctx).
		Preload("Project").
		Preload("MediaFiles", "deleted = ?", false).
		Where("deleted = ?", false).
		Order("created_at DESC").
		Find(&units).Error
	return units, err
}

// SoftDelete marks the unit deleted with a reason.
func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID, reason string) error {
	unit, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	err = s.DB.WithContext(ctx).Model(unit).Updates(map[string]interface{}{
		"deleted":           true,
		"reason_for_delete": reason,
	}).Error
	if err != nil {
		return err
	}
	s.Cache.Invalidate(ctx)
	return nil
}

// livePayments loads the unit's non-deleted payment rows.
func (s *Service) livePayments(ctx context.Context, unitID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.WithContext(ctx).
		Where("unit_id = ? AND deleted = ?", unitID, false).
		Order("due_date").
		Find(&payments).Error
	return payments, err
}

// Summary computes the unit's payment summary from its live records.
func (s *Service) Summary(ctx context.Context, id uuid.UUID) (*PaymentSummary, error) {
	unit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	payments, err := s.livePayments(ctx, id)
	if err != nil {
		return nil, err
	}
	summary := Summarize(unit, payments)
	return &summary, nil
}

// WarrantyInfo computes the unit's warranty window as of today.
func (s *Service) WarrantyInfo(ctx context.Context, id uuid.UUID) (*WarrantyInfo, error) {
	unit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	info := Warranty(unit, time.Now())
	return &info, nil
}

// Graph computes the unit's per-period chart points.
func (s *Service) Graph(ctx context.Context, id uuid.UUID) ([]GraphPoint, error) {
	unit, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return GraphData(unit), nil
}
