package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values accepted on User.Role.
const (
	RoleAdmin  = "admin"
	RoleAgent  = "agent"
	RoleClient = "client"
)

// User is any account: admin, agent, or client. Clients own units.
type User struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Fullname        string     `gorm:"column:fullname;not null" json:"fullname"`
	Email           string     `gorm:"column:email;not null;uniqueIndex" json:"email"`
	Phone           string     `gorm:"column:phone;uniqueIndex" json:"phone"`
	PasswordHash    string     `gorm:"column:password_hash;not null" json:"-"`
	Address         *string    `gorm:"column:address" json:"address"`
	Role            string     `gorm:"column:role;not null;default:client" json:"role"`
	IsVerified      bool       `gorm:"column:is_verified;not null;default:false" json:"is_verified"`
	CommissionRate  *float64   `gorm:"column:commission_rate" json:"commission_rate,omitempty"`
	CompanyID       *uuid.UUID `gorm:"column:company_id;type:uuid;index" json:"company_id,omitempty"`
	CreatedBy       *uuid.UUID `gorm:"column:created_by;type:uuid" json:"created_by,omitempty"`
	Deleted         bool       `gorm:"column:deleted;not null;default:false" json:"deleted"`
	ReasonForDelete *string    `gorm:"column:reason_for_delete" json:"reason_for_delete,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
