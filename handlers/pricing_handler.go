package handlers

import (
	"errors"
	"strings"

	"github.com/adjeiboateng/brightkids_backend/database"
	"github.com/adjeiboateng/brightkids_backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgramPriceRequest struct {
	ProgramName   string `json:"program_name" validate:"required"`
	ScheduleLabel string `json:"schedule_label" validate:"required"`
	PricePesewas  int64  `json:"price_pesewas" validate:"required,min=1"`
}

type DiscountCodeRequest struct {
	Code       string  `json:"code" validate:"required,min=3,max=50"`
	Percentage float64 `json:"percentage" validate:"required,gt=0,lte=100"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

func ListProgramPrices(c *fiber.Ctx) error {
	var prices []models.ProgramPrice
	if err := database.DB.Order("program_name asc, schedule_label asc").Find(&prices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(prices)
}

func CreateProgramPrice(c *fiber.Ctx) error {
	var req ProgramPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	price := models.ProgramPrice{
		ProgramName:   req.ProgramName,
		ScheduleLabel: req.ScheduleLabel,
		PricePesewas:  req.PricePesewas,
	}
	if err := database.DB.Create(&price).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "A price already exists for this program and schedule"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.Status(fiber.StatusCreated).JSON(price)
}

func UpdateProgramPrice(c *fiber.Ctx) error {
	priceID, err := uuid.Parse(c.Params("priceId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid price ID format"})
	}

	var req ProgramPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var price models.ProgramPrice
	if err := database.DB.First(&price, "id = ?", priceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Price entry not found"})
	}

	price.ProgramName = req.ProgramName
	price.ScheduleLabel = req.ScheduleLabel
	price.PricePesewas = req.PricePesewas
	if err := database.DB.Save(&price).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update price entry"})
	}
	return c.JSON(price)
}

func DeleteProgramPrice(c *fiber.Ctx) error {
	priceID, err := uuid.Parse(c.Params("priceId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid price ID format"})
	}

	if err := database.DB.Delete(&models.ProgramPrice{}, "id = ?", priceID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete price entry"})
	}
	return c.JSON(fiber.Map{"message": "Price entry deleted"})
}

func ListDiscountCodes(c *fiber.Ctx) error {
	var codes []models.DiscountCode
	if err := database.DB.Order("created_at desc").Find(&codes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(codes)
}

func CreateDiscountCode(c *fiber.Ctx) error {
	var req DiscountCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	code := models.DiscountCode{
		Code:       strings.ToUpper(strings.TrimSpace(req.Code)),
		Percentage: req.Percentage,
		IsActive:   true,
	}
	if err := database.DB.Create(&code).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Discount code already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.Status(fiber.StatusCreated).JSON(code)
}

func UpdateDiscountCode(c *fiber.Ctx) error {
	codeID, err := uuid.Parse(c.Params("codeId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid code ID format"})
	}

	var req DiscountCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var code models.DiscountCode
	if err := database.DB.First(&code, "id = ?", codeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Discount code not found"})
	}

	code.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	code.Percentage = req.Percentage
	if req.IsActive != nil {
		code.IsActive = *req.IsActive
	}
	if err := database.DB.Save(&code).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update discount code"})
	}
	return c.JSON(code)
}
