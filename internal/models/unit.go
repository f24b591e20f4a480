package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment cadence for a unit on a payment plan.
const (
	DurationMonthly    = "monthly"
	DurationQuarterly  = "quarterly"
	DurationBiAnnually = "bi_annually"
	DurationAnnually   = "annually"
)

// Development status of a unit.
const (
	DevelopmentNotStarted = "not_started"
	DevelopmentInProgress = "in_progress"
	DevelopmentCompleted  = "completed"
)

// Derived unit status (never stored).
const (
	UnitStatusSold      = "sold"
	UnitStatusAvailable = "available"
	UnitStatusDeleted   = "deleted"
)

// Unit is a sellable property instance with its commercial terms.
type Unit struct {
	ID                     uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name                   string          `gorm:"column:name;not null" json:"name"`
	Amount                 decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	ExpectedInitialPayment decimal.Decimal `gorm:"column:expected_initial_payment;type:decimal(18,2);not null" json:"expected_initial_payment"`
	Discount               decimal.Decimal `gorm:"column:discount;type:decimal(6,2);not null;default:0" json:"discount"`
	Comments               *string         `gorm:"column:comments" json:"comments"`
	Type                   *string         `gorm:"column:type" json:"type"`
	PurchaseDate           *time.Time      `gorm:"column:purchase_date" json:"purchase_date"`
	Installment            int             `gorm:"column:installment;not null;default:1" json:"installment"`
	PaymentPlan            bool            `gorm:"column:payment_plan;not null;default:false" json:"payment_plan"`
	PaymentDuration        string          `gorm:"column:payment_duration;not null;default:monthly" json:"payment_duration"`
	HandoverDate           *time.Time      `gorm:"column:handover_date" json:"handover_date"`
	WarrantyPeriod         int             `gorm:"column:warranty_period;not null;default:12" json:"warranty_period"`
	DevelopmentStatus      string          `gorm:"column:development_status;not null;default:not_started" json:"development_status"`
	ClientID               *uuid.UUID      `gorm:"column:client_id;type:uuid" json:"client_id"`
	ProjectID              *uuid.UUID      `gorm:"column:project_id;type:uuid;index" json:"project_id"`
	Deleted                bool            `gorm:"column:deleted;not null;default:false" json:"deleted"`
	ReasonForDelete        *string         `gorm:"column:reason_for_delete" json:"reason_for_delete,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`

	Client     *User       `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Project    *Project    `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Payments   []Payment   `gorm:"foreignKey:UnitID" json:"payments,omitempty"`
	MediaFiles []MediaFile `gorm:"foreignKey:UnitID" json:"media_files,omitempty"`
}

func (Unit) TableName() string {
	return "units"
}

func (u *Unit) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Status derives the lifecycle state: a deleted unit is deleted regardless
// of its client; otherwise a set client means sold.
func (u *Unit) Status() string {
	switch {
	case u.Deleted:
		return UnitStatusDeleted
	case u.ClientID != nil:
		return UnitStatusSold
	default:
		return UnitStatusAvailable
	}
}

// Images returns the file paths of the unit's image attachments.
func (u *Unit) Images() []string {
	var paths []string
	for _, m := range u.MediaFiles {
		if m.IsImage() {
			paths = append(paths, m.FilePath)
		}
	}
	return paths
}
