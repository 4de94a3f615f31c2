package services

import (
	"errors"

	"github.com/adjeiboateng/brightkids_backend/models"
	"gorm.io/gorm"
)

// ErrPriceNotFound means the (program, schedule) pair has no configured price.
// Callers must abort the submission; there is no default price.
var ErrPriceNotFound = errors.New("no price configured for this program and schedule")

func LookupPrice(db *gorm.DB, programName, scheduleLabel string) (int64, error) {
	var entry models.ProgramPrice
	err := db.Where("program_name = ? AND schedule_label = ?", programName, scheduleLabel).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrPriceNotFound
		}
		return 0, err
	}
	return entry.PricePesewas, nil
}
