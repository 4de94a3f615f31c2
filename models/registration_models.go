package models

import (
	"time"

	"github.com/google/uuid"
)

// Program type tags carried in PendingTransaction.Details and used by the
// webhook handler to pick the destination table.
const (
	ProgramCodeClub     = "Code Ninjas Club"
	ProgramChildminding = "Childminding"
	ProgramSummerCamp   = "Summer Camp"
	ProgramShopOrder    = "Shop Order"
	ProgramFeeInvoice   = "Fee Invoice"
)

// CodeClubRegistration is one entrant in the coding club. Created only by the
// webhook handler after the matching transaction is verified.
type CodeClubRegistration struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Reference        string    `gorm:"size:255;not null;index" json:"reference"`
	ChildName        string    `gorm:"size:255;not null" json:"child_name"`
	ChildAge         int       `gorm:"not null" json:"child_age"`
	Schedule         string    `gorm:"size:100;not null" json:"schedule"`
	ParentName       string    `gorm:"size:255;not null" json:"parent_name"`
	ParentEmail      string    `gorm:"size:255;not null" json:"parent_email"`
	ParentPhone      string    `gorm:"size:30;not null" json:"parent_phone"`
	EmergencyContact string    `gorm:"size:255" json:"emergency_contact"`
	AmountPesewas    int64     `gorm:"not null" json:"amount_pesewas"`
	IsActive         bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChildRegistration covers the general enrollment programs (childminding and
// summer camp). One row per child even when several siblings were paid for in
// a single submission; siblings share the transaction reference.
type ChildRegistration struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Reference      string    `gorm:"size:255;not null;index" json:"reference"`
	Program        string    `gorm:"size:50;not null" json:"program"`
	Schedule       string    `gorm:"size:100;not null" json:"schedule"`
	ChildName      string    `gorm:"size:255;not null" json:"child_name"`
	DateOfBirth    string    `gorm:"size:20" json:"date_of_birth"`
	Allergies      string    `gorm:"type:text" json:"allergies"`
	ParentName     string    `gorm:"size:255;not null" json:"parent_name"`
	ParentEmail    string    `gorm:"size:255;not null" json:"parent_email"`
	ParentPhone    string    `gorm:"size:30;not null" json:"parent_phone"`
	SelfDropOff    bool      `json:"self_drop_off"`
	AltPickupNames string    `gorm:"type:text" json:"alt_pickup_names"`
	AmountPesewas  int64     `gorm:"not null" json:"amount_pesewas"`
	IsActive       bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
