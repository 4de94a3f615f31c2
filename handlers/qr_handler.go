package handlers

import (
	"errors"

	"github.com/adjeiboateng/brightkids_backend/database"
	"github.com/adjeiboateng/brightkids_backend/models"
	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// RegistrationQR serves a PNG check-in code for a confirmed registration.
// Staff scan it at drop-off to pull up the child's record by reference.
func RegistrationQR(c *fiber.Ctx) error {
	reference := c.Params("reference")

	var txn models.PendingTransaction
	if err := database.DB.Where("reference = ?", reference).First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction record not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	if txn.Status != models.TxnStatusSuccess {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Registration is not confirmed yet"})
	}

	png, err := qrcode.Encode(reference, qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate QR code"})
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
