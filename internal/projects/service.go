package projects

import (
	"context"
	"errors"

	"brickvale-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("project not found")

type Service struct {
	DB *gorm.DB
}

// CreateInput is the create-project request body.
type CreateInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Address     string  `json:"address" validate:"required"`
	NumUnits    int     `json:"num_units" validate:"required,min=1"`
	Purpose     *string `json:"purpose"`
	ArtworkURL  *string `json:"artwork_url"`
}

// UpdateInput carries the patchable project fields.
type UpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	NumUnits    *int    `json:"num_units"`
	Purpose     *string `json:"purpose"`
	ArtworkURL  *string `json:"artwork_url"`
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Project, error) {
	project := models.Project{
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		NumUnits:    input.NumUnits,
		Purpose:     input.Purpose,
		ArtworkURL:  input.ArtworkURL,
	}
	if err := s.DB.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *Service) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := s.DB.WithContext(ctx).
		Where("deleted = ?", false).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := s.DB.WithContext(ctx).Where("id = ? AND deleted = ?", id, false).First(&project).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Project, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.NumUnits != nil {
		updates["num_units"] = *input.NumUnits
	}
	if input.Purpose != nil {
		updates["purpose"] = *input.Purpose
	}
	if input.ArtworkURL != nil {
		updates["artwork_url"] = *input.ArtworkURL
	}
	if len(updates) == 0 {
		return project, nil
	}
	if err := s.DB.WithContext(ctx).Model(project).Updates(updates).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// SoftDelete marks the project deleted with a reason; rows are never
// hard-deleted.
func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID, reason string) error {
	project, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Model(project).Updates(map[string]interface{}{
		"deleted":           true,
		"reason_for_delete": reason,
	}).Error
}
