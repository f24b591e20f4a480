package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment status values.
const (
	PaymentPaid    = "paid"
	PaymentNotPaid = "not_paid"
	PaymentOverdue = "overdue"
)

// Payment is one financial obligation or settled record tied to a unit.
// PaymentDate is set iff Status is paid, and a paid row always references a
// receipt media file. Unpaid rows are fungible: the recalculation engine
// deletes and regenerates them when the unit's terms change.
type Payment struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UnitID           uuid.UUID       `gorm:"column:unit_id;type:uuid;not null;index" json:"unit_id"`
	Amount           decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	DueDate          *time.Time      `gorm:"column:due_date" json:"due_date"`
	PaymentDate      *time.Time      `gorm:"column:payment_date" json:"payment_date"`
	Status           string          `gorm:"column:status;not null;default:not_paid" json:"status"`
	ReasonForPayment *string         `gorm:"column:reason_for_payment" json:"reason_for_payment"`
	ReceiptID        *uuid.UUID      `gorm:"column:receipt_id;type:uuid" json:"receipt_id"`
	Deleted          bool            `gorm:"column:deleted;not null;default:false" json:"deleted"`
	ReasonForDelete  *string         `gorm:"column:reason_for_delete" json:"reason_for_delete,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	Unit    *Unit      `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	Receipt *MediaFile `gorm:"foreignKey:ReceiptID" json:"receipt,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
