package models

import (
	"time"

	"github.com/google/uuid"
)

// ProgramPrice is one row of the pricing table: the cost of a given schedule
// within a program, in pesewas. Mutated only from the admin pricing screen.
type ProgramPrice struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProgramName   string    `gorm:"size:100;not null;uniqueIndex:idx_program_schedule" json:"program_name"`
	ScheduleLabel string    `gorm:"size:100;not null;uniqueIndex:idx_program_schedule" json:"schedule_label"`
	PricePesewas  int64     `gorm:"not null" json:"price_pesewas"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
