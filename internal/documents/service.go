package documents

import (
	"context"
	"errors"

	"brickvale-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrUnitNotFound = errors.New("unit not found")
)

type Service struct {
	DB *gorm.DB
}

// TemplateInput is the create-template request body.
type TemplateInput struct {
	Name   string    `json:"name" validate:"required"`
	Link   string    `json:"link" validate:"required,url"`
	UnitID uuid.UUID `json:"unit_id" validate:"required"`
}

// SignedInput is the record-signed-document request body.
type SignedInput struct {
	Name     string     `json:"name" validate:"required"`
	Link     string     `json:"link" validate:"required,url"`
	UnitID   uuid.UUID  `json:"unit_id" validate:"required"`
	ClientID *uuid.UUID `json:"client_id"`
	AgentID  *uuid.UUID `json:"agent_id"`
}

func (s *Service) checkUnit(ctx context.Context, unitID uuid.UUID) error {
	var unit models.Unit
	err := s.DB.WithContext(ctx).
		Where("id = ? AND deleted = ?", unitID, false).
		First(&unit).Error
	if err == gorm.ErrRecordNotFound {
		return ErrUnitNotFound
	}
	return err
}

// CreateTemplate records a blank contract template for a unit.
func (s *Service) CreateTemplate(ctx context.Context, input TemplateInput) (*models.Document, error) {
	if err := s.checkUnit(ctx, input.UnitID); err != nil {
		return nil, err
	}
	doc := models.Document{
		Kind:   models.DocumentTemplate,
		Name:   input.Name,
		Link:   input.Link,
		UnitID: input.UnitID,
	}
	if err := s.DB.WithContext(ctx).Create(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// CreateSigned records a signed copy attributed to a client and agent.
func (s *Service) CreateSigned(ctx context.Context, input SignedInput) (*models.Document, error) {
	if err := s.checkUnit(ctx, input.UnitID); err != nil {
		return nil, err
	}
	doc := models.Document{
		Kind:     models.DocumentSigned,
		Name:     input.Name,
		Link:     input.Link,
		UnitID:   input.UnitID,
		ClientID: input.ClientID,
		AgentID:  input.AgentID,
	}
	if err := s.DB.WithContext(ctx).Create(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Service) listByKind(ctx context.Context, kind, column string, id uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	err := s.DB.WithContext(ctx).
		Where("kind = ? AND deleted = ?", kind, false).
		Where(column+" = ?", id).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

// TemplatesByUnit returns a unit's live templates.
func (s *Service) TemplatesByUnit(ctx context.Context, unitID uuid.UUID) ([]models.Document, error) {
	return s.listByKind(ctx, models.DocumentTemplate, "unit_id", unitID)
}

// SignedByUnit returns a unit's live signed documents.
func (s *Service) SignedByUnit(ctx context.Context, unitID uuid.UUID) ([]models.Document, error) {
	return s.listByKind(ctx, models.DocumentSigned, "unit_id", unitID)
}

// SignedByClient returns a client's live signed documents.
func (s *Service) SignedByClient(ctx context.Context, clientID uuid.UUID) ([]models.Document, error) {
	return s.listByKind(ctx, models.DocumentSigned, "client_id", clientID)
}

// SignedByAgent returns signed documents an agent is party to.
func (s *Service) SignedByAgent(ctx context.Context, agentID uuid.UUID) ([]models.Document, error) {
	return s.listByKind(ctx, models.DocumentSigned, "agent_id", agentID)
}

// SoftDelete marks a document deleted with a reason.
func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID, reason string) error {
	var doc models.Document
	err := s.DB.WithContext(ctx).
		Where("id = ? AND deleted = ?", id, false).
		First(&doc).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrNotFound
		}
		return err
	}
	return s.DB.WithContext(ctx).Model(&doc).Updates(map[string]interface{}{
		"deleted":           true,
		"reason_for_delete": reason,
	}).Error
}
