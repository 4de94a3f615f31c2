package models

import (
	"time"

	"github.com/google/uuid"
)

// FeeInvoice is the permanent record of a paid school fee. Like every other
// registration record it is created by the webhook handler, never by the
// public fee-request form itself.
type FeeInvoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Reference     string    `gorm:"size:255;not null;index" json:"reference"`
	InvoiceNumber string    `gorm:"size:50;not null;unique" json:"invoice_number"`
	StudentName   string    `gorm:"size:255;not null" json:"student_name"`
	Term          string    `gorm:"size:100;not null" json:"term"`
	PayerName     string    `gorm:"size:255;not null" json:"payer_name"`
	PayerEmail    string    `gorm:"size:255;not null" json:"payer_email"`
	AmountPesewas int64     `gorm:"not null" json:"amount_pesewas"`
	Status        string    `gorm:"size:20;not null;default:'paid'" json:"status"`
	ReceiptURL    *string   `gorm:"size:512" json:"receipt_url"`
	IsActive      bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
