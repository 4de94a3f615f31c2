package handlers

import (
	"errors"
	"log"

	"github.com/adjeiboateng/brightkids_backend/database"
	"github.com/adjeiboateng/brightkids_backend/models"
	"github.com/adjeiboateng/brightkids_backend/notifications"
	"github.com/adjeiboateng/brightkids_backend/payments"
	"github.com/adjeiboateng/brightkids_backend/realtime"
	"github.com/adjeiboateng/brightkids_backend/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PaystackWebhookPayload struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Status    string `json:"status"`
		Amount    int64  `json:"amount"`
	} `json:"data"`
}

// HandlePaystackWebhook processes charge.success deliveries. Order matters:
// the status guard runs before any mutating work so replayed deliveries are
// no-ops, and the charge is re-verified against Paystack before the flip —
// the webhook payload's own claims are never trusted. Any failure after the
// guard returns non-2xx so the gateway redelivers; redelivery is safe because
// the pending->success flip is a conditional update.
func HandlePaystackWebhook(c *fiber.Ctx) error {
	var payload PaystackWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse webhook payload"})
	}

	if payload.Event != "charge.success" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Event ignored"})
	}

	reference := payload.Data.Reference
	log.Printf("Received charge.success webhook for reference %s", reference)

	var txn models.PendingTransaction
	if err := database.DB.Where("reference = ?", reference).First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction record not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if txn.Status != models.TxnStatusPending {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Webhook already processed"})
	}

	verifyResp, err := payments.VerifyTransaction(reference)
	if err != nil {
		log.Printf("🔥 Failed to verify charge %s with Paystack: %v", reference, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Charge verification failed"})
	}
	if !verifyResp.Status || verifyResp.Data.Status != "success" {
		log.Printf("Webhook for %s claims success but Paystack reports %q, ignoring", reference, verifyResp.Data.Status)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Charge is not successful at the gateway"})
	}

	details, err := services.PromoteTransaction(database.DB, &txn)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyProcessed) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Webhook already processed"})
		}
		log.Printf("🔥 CRITICAL: Error promoting transaction %s: %v", reference, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process webhook"})
	}

	recipientName, recipientEmail := details.Recipient()
	go func() {
		notifications.SendEmail(recipientName, recipientEmail, notifications.ReceiptSubject(details.ProgramType),
			notifications.BuildReceiptEmail(details, txn.Reference, txn.AmountPesewas))
		notifications.SendAdminEmail("New "+details.ProgramType+" payment",
			notifications.BuildAdminNotification(details, txn.Reference, txn.AmountPesewas))
	}()

	realtime.NotifyRegistration(realtime.RegistrationEvent{
		ProgramType:   details.ProgramType,
		Reference:     txn.Reference,
		Name:          recipientName,
		AmountPesewas: txn.AmountPesewas,
	})

	if details.ProgramType == models.ProgramFeeInvoice {
		go services.GenerateFeeReceipt(database.DB, details.FeeInvoice.InvoiceNumber)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Webhook processed successfully"})
}

// GetTransactionStatus backs the browser-side poller on the payment
// verification page.
func GetTransactionStatus(c *fiber.Ctx) error {
	reference := c.Params("reference")

	var txn models.PendingTransaction
	if err := database.DB.Where("reference = ?", reference).First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction record not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(fiber.Map{
		"reference":      txn.Reference,
		"order_id":       txn.OrderID,
		"status":         txn.Status,
		"program_type":   txn.ProgramType,
		"amount_pesewas": txn.AmountPesewas,
	})
}

// LookupRegistration reports whether the permanent record for a reference
// exists yet. The poller keeps retrying on 404 since the webhook may still be
// mid-flight.
func LookupRegistration(c *fiber.Ctx) error {
	reference := c.Params("reference")

	var txn models.PendingTransaction
	if err := database.DB.Where("reference = ?", reference).First(&txn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction record not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	switch txn.ProgramType {
	case models.ProgramCodeClub:
		var registration models.CodeClubRegistration
		if err := database.DB.Where("reference = ?", reference).First(&registration).Error; err != nil {
			return registrationLookupError(c, err)
		}
		return c.JSON(registration)
	case models.ProgramChildminding, models.ProgramSummerCamp:
		var registrations []models.ChildRegistration
		if err := database.DB.Where("reference = ?", reference).Find(&registrations).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
		if len(registrations) == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Registration not found"})
		}
		return c.JSON(registrations)
	case models.ProgramShopOrder:
		var order models.ShopOrder
		if err := database.DB.Preload("Items").Where("reference = ?", reference).First(&order).Error; err != nil {
			return registrationLookupError(c, err)
		}
		return c.JSON(order)
	case models.ProgramFeeInvoice:
		var invoice models.FeeInvoice
		if err := database.DB.Where("reference = ?", reference).First(&invoice).Error; err != nil {
			return registrationLookupError(c, err)
		}
		return c.JSON(invoice)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Unknown program type"})
	}
}

func registrationLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Registration not found"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
}
