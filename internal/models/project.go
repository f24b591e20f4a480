package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a development a unit belongs to.
type Project struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"column:name;not null;index" json:"name"`
	Description     *string   `gorm:"column:description" json:"description"`
	Address         string    `gorm:"column:address;not null" json:"address"`
	NumUnits        int       `gorm:"column:num_units;not null" json:"num_units"`
	Purpose         *string   `gorm:"column:purpose" json:"purpose"`
	ArtworkURL      *string   `gorm:"column:artwork_url" json:"artwork_url"`
	Deleted         bool      `gorm:"column:deleted;not null;default:false" json:"deleted"`
	ReasonForDelete *string   `gorm:"column:reason_for_delete" json:"reason_for_delete,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Units []Unit `gorm:"foreignKey:ProjectID" json:"units,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
