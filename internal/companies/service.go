package companies

import (
	"context"
	"errors"

	"brickvale-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("company not found")

type Service struct {
	DB *gorm.DB
}

// CreateInput is the create-company request body.
type CreateInput struct {
	Name    string  `json:"name" validate:"required"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

// UpdateInput carries the patchable company fields.
type UpdateInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Company, error) {
	company := models.Company{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
		Email:   input.Email,
	}
	if err := s.DB.WithContext(ctx).Create(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *Service) List(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	err := s.DB.WithContext(ctx).
		Where("deleted = ?", false).
		Order("created_at DESC").
		Find(&companies).Error
	return companies, err
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	err := s.DB.WithContext(ctx).
		Where("id = ? AND deleted = ?", id, false).
		First(&company).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Company, error) {
	company, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if len(updates) == 0 {
		return company, nil
	}
	if err := s.DB.WithContext(ctx).Model(company).Updates(updates).Error; err != nil {
		return nil, err
	}
	return company, nil
}

// SoftDelete marks the company deleted with a reason.
func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID, reason string) error {
	company, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Model(company).Updates(map[string]interface{}{
		"deleted":           true,
		"reason_for_delete": reason,
	}).Error
}
