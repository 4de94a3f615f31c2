package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TxnStatusPending = "pending"
	TxnStatusSuccess = "success"
	TxnStatusFailed  = "failed"
)

// PendingTransaction is the audit record for one Paystack checkout session.
// Inserted by the registration handlers right after the gateway accepts
// initialization, and flipped to success exactly once by the webhook handler.
// Rows are never deleted.
type PendingTransaction struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Reference       string    `gorm:"size:255;not null;unique" json:"reference"`
	OrderID         string    `gorm:"size:50;not null" json:"order_id"`
	Email           string    `gorm:"size:255;not null" json:"email"`
	AmountPesewas   int64     `gorm:"not null" json:"amount_pesewas"`
	Status          string    `gorm:"size:20;not null;default:'pending'" json:"status"`
	ProgramType     string    `gorm:"size:50;not null" json:"program_type"`
	Details         string    `gorm:"type:text;not null" json:"-"`
	GatewayResponse string    `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
