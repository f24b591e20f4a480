package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document kinds.
const (
	DocumentTemplate = "template"
	DocumentSigned   = "signed"
)

// Document is metadata for a contract document tied to a unit: either a
// blank template or a signed copy attributed to a client and agent. Only
// the link is stored; the bytes live in external storage.
type Document struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Kind            string     `gorm:"column:kind;not null;index" json:"kind"`
	Name            string     `gorm:"column:name;not null" json:"name"`
	Link            string     `gorm:"column:link;not null" json:"link"`
	UnitID          uuid.UUID  `gorm:"column:unit_id;type:uuid;not null;index" json:"unit_id"`
	ClientID        *uuid.UUID `gorm:"column:client_id;type:uuid;index" json:"client_id"`
	AgentID         *uuid.UUID `gorm:"column:agent_id;type:uuid;index" json:"agent_id"`
	Deleted         bool       `gorm:"column:deleted;not null;default:false" json:"deleted"`
	ReasonForDelete *string    `gorm:"column:reason_for_delete" json:"reason_for_delete,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Unit *Unit `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}

func (Document) TableName() string {
	return "documents"
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
