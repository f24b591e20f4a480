package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Agent roles on a unit assignment.
const (
	AgentRoleSalesRep = "sales_rep"
	AgentRoleExternal = "external_agent"
)

// UnitAgent assigns an agent to a unit, typically the selling rep whose
// commission the unit counts toward.
type UnitAgent struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UnitID    uuid.UUID `gorm:"column:unit_id;type:uuid;not null;index" json:"unit_id"`
	AgentID   uuid.UUID `gorm:"column:agent_id;type:uuid;not null;index" json:"agent_id"`
	Role      string    `gorm:"column:role;not null;default:sales_rep" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Unit  *Unit `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	Agent *User `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
}

func (UnitAgent) TableName() string {
	return "unit_agents"
}

func (a *UnitAgent) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
