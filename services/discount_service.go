package services

import (
	"errors"
	"log"
	"math"
	"strings"

	"github.com/adjeiboateng/brightkids_backend/models"
	"gorm.io/gorm"
)

var ErrDiscountNotFound = errors.New("discount code is invalid or no longer active")

// ApplyDiscount reduces a subtotal by a percentage, rounding to the nearest
// pesewa and flooring at 1 pesewa, which is the smallest charge the gateway
// accepts. The discount applies to the combined subtotal of a submission, not
// per item.
func ApplyDiscount(subtotalPesewas int64, percentage float64) int64 {
	discounted := math.Round(float64(subtotalPesewas) * (100 - percentage) / 100)
	if discounted < 1 {
		return 1
	}
	return int64(discounted)
}

// FetchDiscount resolves a user-entered code to an active DiscountCode.
// Codes are stored uppercased.
func FetchDiscount(db *gorm.DB, code string) (*models.DiscountCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, ErrDiscountNotFound
	}

	var discount models.DiscountCode
	err := db.Where("code = ? AND is_active = ?", normalized, true).First(&discount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDiscountNotFound
		}
		return nil, err
	}
	return &discount, nil
}

// RecordDiscountUse bumps the usage counter after a redemption. The increment
// is not guarded against concurrent redemptions; the counter is informational.
func RecordDiscountUse(db *gorm.DB, discount *models.DiscountCode) {
	discount.UsageCount++
	if err := db.Save(discount).Error; err != nil {
		log.Printf("Failed to record usage for discount code %s: %v", discount.Code, err)
	}
}
