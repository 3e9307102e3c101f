package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel is embedded by every persisted entity to get a surrogate
// identity and bookkeeping timestamps.
type BaseModel struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
