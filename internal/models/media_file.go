package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MediaFile is the metadata row for an uploaded file (unit photo, payment
// receipt). The bytes live in external object storage; only the path is
// recorded here.
type MediaFile struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UnitID          *uuid.UUID `gorm:"column:unit_id;type:uuid;index" json:"unit_id"`
	FilePath        string     `gorm:"column:file_path;not null" json:"file_path"`
	FileType        string     `gorm:"column:file_type;not null" json:"file_type"`
	Deleted         bool       `gorm:"column:deleted;not null;default:false" json:"deleted"`
	ReasonForDelete *string    `gorm:"column:reason_for_delete" json:"reason_for_delete,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (MediaFile) TableName() string {
	return "media_files"
}

func (m *MediaFile) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// IsImage reports whether the file is a displayable unit photo.
func (m *MediaFile) IsImage() bool {
	switch m.FileType {
	case "image/jpeg", "image/jpg", "image/png":
		return true
	}
	return false
}
