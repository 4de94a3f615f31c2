package handlers

import (
	"errors"
	"log"

	config "github.com/adjeiboateng/brightkids_backend/configs"
	"github.com/adjeiboateng/brightkids_backend/database"
	"github.com/adjeiboateng/brightkids_backend/models"
	"github.com/adjeiboateng/brightkids_backend/payments"
	"github.com/adjeiboateng/brightkids_backend/services"
	"github.com/adjeiboateng/brightkids_backend/utils"
	"github.com/gofiber/fiber/v2"
)

type CodeClubRequest struct {
	ChildName        string `json:"child_name" validate:"required,min=2"`
	ChildAge         int    `json:"child_age" validate:"required,min=4,max=16"`
	Schedule         string `json:"schedule" validate:"required"`
	ParentName       string `json:"parent_name" validate:"required,min=2"`
	ParentEmail      string `json:"parent_email" validate:"required,email"`
	ParentPhone      string `json:"parent_phone" validate:"required,min=9"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	DiscountCode     string `json:"discount_code,omitempty"`
}

type EnrollmentChildRequest struct {
	ChildName   string `json:"child_name" validate:"required,min=2"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	Schedule    string `json:"schedule" validate:"required"`
	Allergies   string `json:"allergies,omitempty"`
}

type EnrollmentRequest struct {
	Program        string                   `json:"program" validate:"required"`
	Children       []EnrollmentChildRequest `json:"children" validate:"required,min=1,dive"`
	ParentName     string                   `json:"parent_name" validate:"required,min=2"`
	ParentEmail    string                   `json:"parent_email" validate:"required,email"`
	ParentPhone    string                   `json:"parent_phone" validate:"required,min=9"`
	SelfDropOff    bool                     `json:"self_drop_off"`
	AltPickupNames []string                 `json:"alt_pickup_names,omitempty"`
	DiscountCode   string                   `json:"discount_code,omitempty"`
}

// CreateCodeClubRegistration starts a paid code club signup: price lookup,
// optional discount, Paystack checkout session, pending transaction. The
// permanent registration row is only ever written by the webhook handler.
func CreateCodeClubRegistration(c *fiber.Ctx) error {
	var req CodeClubRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	price, err := services.LookupPrice(database.DB, models.ProgramCodeClub, req.Schedule)
	if err != nil {
		if errors.Is(err, services.ErrPriceNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No price is configured for the selected schedule"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	amount := price
	if req.DiscountCode != "" {
		discount, err := services.FetchDiscount(database.DB, req.DiscountCode)
		if err != nil {
			if errors.Is(err, services.ErrDiscountNotFound) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Discount code is invalid or no longer active"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
		services.RecordDiscountUse(database.DB, discount)
		amount = services.ApplyDiscount(amount, discount.Percentage)
	}

	details := models.TransactionDetails{
		ProgramType: models.ProgramCodeClub,
		CodeClub: &models.CodeClubDetails{
			ChildName:        req.ChildName,
			ChildAge:         req.ChildAge,
			Schedule:         req.Schedule,
			ParentName:       req.ParentName,
			ParentEmail:      req.ParentEmail,
			ParentPhone:      req.ParentPhone,
			EmergencyContact: req.EmergencyContact,
		},
	}

	return startCheckout(c, req.ParentEmail, amount, details)
}

// CreateEnrollment handles childminding and summer camp signups, possibly for
// several siblings in one submission. The discount applies to the combined
// total, not per child, so receipts match what the family was quoted.
func CreateEnrollment(c *fiber.Ctx) error {
	var req EnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Program != models.ProgramChildminding && req.Program != models.ProgramSummerCamp {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Program must be Childminding or Summer Camp"})
	}

	if !req.SelfDropOff && len(req.AltPickupNames) < 2 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "At least two alternate pickup names are required unless you drop off and pick up yourself"})
	}

	var subtotal int64
	for _, child := range req.Children {
		price, err := services.LookupPrice(database.DB, req.Program, child.Schedule)
		if err != nil {
			if errors.Is(err, services.ErrPriceNotFound) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No price is configured for schedule: " + child.Schedule})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
		subtotal += price
	}

	// The discount applies once to the combined total, never per child.
	amount := subtotal
	if req.DiscountCode != "" {
		discount, err := services.FetchDiscount(database.DB, req.DiscountCode)
		if err != nil {
			if errors.Is(err, services.ErrDiscountNotFound) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Discount code is invalid or no longer active"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
		services.RecordDiscountUse(database.DB, discount)
		amount = services.ApplyDiscount(amount, discount.Percentage)
	}

	children := make([]models.EnrollmentChild, 0, len(req.Children))
	for _, child := range req.Children {
		children = append(children, models.EnrollmentChild{
			ChildName:   child.ChildName,
			DateOfBirth: child.DateOfBirth,
			Schedule:    child.Schedule,
			Allergies:   child.Allergies,
		})
	}

	details := models.TransactionDetails{
		ProgramType: req.Program,
		Enrollment: &models.EnrollmentDetails{
			Program:        req.Program,
			Children:       children,
			ParentName:     req.ParentName,
			ParentEmail:    req.ParentEmail,
			ParentPhone:    req.ParentPhone,
			SelfDropOff:    req.SelfDropOff,
			AltPickupNames: req.AltPickupNames,
		},
	}

	return startCheckout(c, req.ParentEmail, amount, details)
}

// startCheckout creates the Paystack session and the pending transaction row.
// If the insert fails after the gateway session exists, the user could pay
// with no local record; there is no compensating call, so log CRITICAL for
// manual reconciliation against the gateway dashboard.
func startCheckout(c *fiber.Ctx, email string, amountPesewas int64, details models.TransactionDetails) error {
	encoded, err := details.Encode()
	if err != nil {
		log.Printf("🔥 Failed to encode transaction details: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Payment could not be started"})
	}

	callbackURL := config.Config("FRONTEND_BASE_URL") + "/payment/verify"
	initResp, err := payments.InitializeTransaction(email, amountPesewas, callbackURL)
	if err != nil {
		log.Printf("🔥 Paystack initialization failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Payment could not be started"})
	}

	rawResponse := ""
	if raw, err := initResp.Raw(); err == nil {
		rawResponse = raw
	}

	txn := models.PendingTransaction{
		Reference:       initResp.Data.Reference,
		OrderID:         utils.GenerateOrderID(),
		Email:           email,
		AmountPesewas:   amountPesewas,
		Status:          models.TxnStatusPending,
		ProgramType:     details.ProgramType,
		Details:         encoded,
		GatewayResponse: rawResponse,
	}
	if err := database.DB.Create(&txn).Error; err != nil {
		log.Printf("🔥 CRITICAL: Paystack session %s created but pending transaction insert failed: %v. Reconcile manually against the gateway dashboard.", initResp.Data.Reference, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Payment could not be started"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"reference":         txn.Reference,
		"order_id":          txn.OrderID,
		"amount_pesewas":    amountPesewas,
		"authorization_url": initResp.Data.AuthorizationURL,
	})
}
