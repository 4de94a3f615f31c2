package models

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	PricePesewas int64     `gorm:"not null" json:"price_pesewas"`
	ImageURL     string    `gorm:"size:512" json:"image_url"`
	InStock      bool      `gorm:"default:true" json:"in_stock"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ShopOrder struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Reference     string    `gorm:"size:255;not null;index" json:"reference"`
	CustomerName  string    `gorm:"size:255;not null" json:"customer_name"`
	CustomerEmail string    `gorm:"size:255;not null" json:"customer_email"`
	CustomerPhone string    `gorm:"size:30;not null" json:"customer_phone"`
	AmountPesewas int64     `gorm:"not null" json:"amount_pesewas"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`

	Items []ShopOrderItem `gorm:"foreignkey:ShopOrderID" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ShopOrderItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ShopOrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"shop_order_id"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null" json:"product_id"`
	ProductName   string    `gorm:"size:255;not null" json:"product_name"`
	UnitPesewas   int64     `gorm:"not null" json:"unit_pesewas"`
	Quantity      int       `gorm:"not null" json:"quantity"`

	CreatedAt time.Time `json:"created_at"`
}
