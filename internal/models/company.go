package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is the selling organization users belong to.
type Company struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"column:name;not null" json:"name"`
	Address         *string   `gorm:"column:address" json:"address"`
	Phone           *string   `gorm:"column:phone" json:"phone"`
	Email           *string   `gorm:"column:email" json:"email"`
	Deleted         bool      `gorm:"column:deleted;not null;default:false" json:"deleted"`
	ReasonForDelete *string   `gorm:"column:reason_for_delete" json:"reason_for_delete,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Users []User `gorm:"foreignKey:CompanyID" json:"users,omitempty"`
}

func (Company) TableName() string {
	return "companies"
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
