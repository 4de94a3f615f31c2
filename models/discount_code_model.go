package models

import (
	"time"

	"github.com/google/uuid"
)

type DiscountCode struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Code       string    `gorm:"size:50;not null;unique" json:"code"`
	Percentage float64   `gorm:"not null" json:"percentage"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	UsageCount int       `gorm:"default:0" json:"usage_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
