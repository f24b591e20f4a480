package unitagents

import (
	"context"
	"errors"

	"brickvale-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotAnAgent   = errors.New("agent_id does not belong to an agent")
	ErrUnitNotFound = errors.New("unit not found")
	ErrInvalidRole  = errors.New("role must be sales_rep or external_agent")
)

type Service struct {
	DB *gorm.DB
}

// CreateInput is the assign-agent request body.
type CreateInput struct {
	UnitID  uuid.UUID `json:"unit_id" validate:"required"`
	AgentID uuid.UUID `json:"agent_id" validate:"required"`
	Role    string    `json:"role"`
}

// Create assigns an agent to a unit. The referenced user must carry the
// agent role and the unit must be live.
func (s *Service) Create(ctx context.Context, input CreateInput) (*models.UnitAgent, error) {
	role := input.Role
	if role == "" {
		role = models.AgentRoleSalesRep
	}
	if role != models.AgentRoleSalesRep && role != models.AgentRoleExternal {
		return nil, ErrInvalidRole
	}

	var agent models.User
	err := s.DB.WithContext(ctx).
		Where("id = ? AND deleted = ?", input.AgentID, false).
		First(&agent).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotAnAgent
		}
		return nil, err
	}
	if agent.Role != models.RoleAgent {
		return nil, ErrNotAnAgent
	}

	var unit models.Unit
	err = s.DB.WithContext(ctx).
		Where("id = ? AND deleted = ?", input.UnitID, false).
		First(&unit).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}

	link := models.UnitAgent{
		UnitID:  input.UnitID,
		AgentID: input.AgentID,
		Role:    role,
	}
	if err := s.DB.WithContext(ctx).Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// List returns all assignments with their unit and agent preloaded.
func (s *Service) List(ctx context.Context) ([]models.UnitAgent, error) {
	var links []models.UnitAgent
	err := s.DB.WithContext(ctx).
		Preload("Unit").
		Preload("Agent").
		Order("created_at DESC").
		Find(&links).Error
	return links, err
}

// ListByUnit returns the agents assigned to one unit.
func (s *Service) ListByUnit(ctx context.Context, unitID uuid.UUID) ([]models.UnitAgent, error) {
	var links []models.UnitAgent
	err := s.DB.WithContext(ctx).
		Preload("Agent").
		Where("unit_id = ?", unitID).
		Find(&links).Error
	return links, err
}

// ListByAgent returns the units an agent is assigned to.
func (s *Service) ListByAgent(ctx context.Context, agentID uuid.UUID) ([]models.UnitAgent, error) {
	var links []models.UnitAgent
	err := s.DB.WithContext(ctx).
		Preload("Unit").
		Where("agent_id = ?", agentID).
		Find(&links).Error
	return links, err
}
