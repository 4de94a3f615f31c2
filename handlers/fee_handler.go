package handlers

import (
	"github.com/adjeiboateng/brightkids_backend/models"
	"github.com/adjeiboateng/brightkids_backend/utils"
	"github.com/gofiber/fiber/v2"
)

type FeeRequest struct {
	StudentName   string `json:"student_name" validate:"required,min=2"`
	Term          string `json:"term" validate:"required"`
	PayerName     string `json:"payer_name" validate:"required,min=2"`
	PayerEmail    string `json:"payer_email" validate:"required,email"`
	AmountPesewas int64  `json:"amount_pesewas" validate:"required,min=100"`
}

// CreateFeeRequest starts a fees payment for the amount the school quoted the
// parent. The invoice record is written by the webhook handler after the
// charge is verified, then a PDF receipt is generated in the background.
func CreateFeeRequest(c *fiber.Ctx) error {
	var req FeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	details := models.TransactionDetails{
		ProgramType: models.ProgramFeeInvoice,
		FeeInvoice: &models.FeeInvoiceDetails{
			InvoiceNumber: utils.GenerateInvoiceNumber(),
			StudentName:   req.StudentName,
			Term:          req.Term,
			PayerName:     req.PayerName,
			PayerEmail:    req.PayerEmail,
		},
	}

	return startCheckout(c, req.PayerEmail, req.AmountPesewas, details)
}
