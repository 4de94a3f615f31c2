package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/adjeiboateng/brightkids_backend/database"
	"github.com/adjeiboateng/brightkids_backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ListTransactions(c *fiber.Ctx) error {
	query := database.DB.Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if programType := c.Query("program_type"); programType != "" {
		query = query.Where("program_type = ?", programType)
	}

	var transactions []models.PendingTransaction
	if err := query.Limit(200).Find(&transactions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(transactions)
}

func ListCodeClubRegistrations(c *fiber.Ctx) error {
	var registrations []models.CodeClubRegistration
	if err := database.DB.Where("is_active = ?", true).Order("created_at desc").Find(&registrations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(registrations)
}

func ListChildRegistrations(c *fiber.Ctx) error {
	query := database.DB.Where("is_active = ?", true).Order("created_at desc")
	if program := c.Query("program"); program != "" {
		query = query.Where("program = ?", program)
	}

	var registrations []models.ChildRegistration
	if err := query.Find(&registrations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(registrations)
}

func ListShopOrders(c *fiber.Ctx) error {
	var orders []models.ShopOrder
	if err := database.DB.Preload("Items").Where("is_active = ?", true).Order("created_at desc").Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(orders)
}

func ListFeeInvoices(c *fiber.Ctx) error {
	var invoices []models.FeeInvoice
	if err := database.DB.Where("is_active = ?", true).Order("created_at desc").Find(&invoices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(invoices)
}

// DeactivateChildRegistration is a soft delete; the row stays for the audit
// trail but disappears from admin listings.
func DeactivateChildRegistration(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("registrationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid registration ID format"})
	}

	var registration models.ChildRegistration
	if err := database.DB.First(&registration, "id = ?", registrationID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Registration not found"})
	}

	registration.IsActive = false
	if err := database.DB.Save(&registration).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate registration"})
	}
	return c.JSON(fiber.Map{"message": "Registration deactivated"})
}

func DeactivateCodeClubRegistration(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("registrationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid registration ID format"})
	}

	var registration models.CodeClubRegistration
	if err := database.DB.First(&registration, "id = ?", registrationID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Registration not found"})
	}

	registration.IsActive = false
	if err := database.DB.Save(&registration).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate registration"})
	}
	return c.JSON(fiber.Map{"message": "Registration deactivated"})
}

// ExportChildRegistrationsCSV downloads the active enrollment roster for
// offline use (attendance sheets, catering counts).
func ExportChildRegistrationsCSV(c *fiber.Ctx) error {
	query := database.DB.Where("is_active = ?", true).Order("created_at asc")
	if program := c.Query("program"); program != "" {
		query = query.Where("program = ?", program)
	}

	var registrations []models.ChildRegistration
	if err := query.Find(&registrations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	writer.Write([]string{"Child Name", "Program", "Schedule", "Date of Birth", "Allergies", "Parent Name", "Parent Email", "Parent Phone", "Self Drop-off", "Alternate Pickups", "Reference", "Registered At"})

	for _, r := range registrations {
		selfDropOff := "no"
		if r.SelfDropOff {
			selfDropOff = "yes"
		}
		writer.Write([]string{
			r.ChildName, r.Program, r.Schedule, r.DateOfBirth, r.Allergies,
			r.ParentName, r.ParentEmail, r.ParentPhone, selfDropOff, r.AltPickupNames,
			r.Reference, r.CreatedAt.Format(time.RFC3339),
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build CSV"})
	}

	filename := fmt.Sprintf("registrations_%s.csv", time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(buf.Bytes())
}

type ProductRequest struct {
	Name         string `json:"name" validate:"required,min=2"`
	Description  string `json:"description,omitempty"`
	PricePesewas int64  `json:"price_pesewas" validate:"required,min=1"`
	ImageURL     string `json:"image_url,omitempty"`
	InStock      *bool  `json:"in_stock,omitempty"`
}

func CreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	product := models.Product{
		Name:         req.Name,
		Description:  req.Description,
		PricePesewas: req.PricePesewas,
		ImageURL:     req.ImageURL,
		InStock:      true,
		IsActive:     true,
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if err := database.DB.Create(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func UpdateProduct(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID format"})
	}

	var req ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var product models.Product
	if err := database.DB.First(&product, "id = ?", productID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	product.Name = req.Name
	product.Description = req.Description
	product.PricePesewas = req.PricePesewas
	product.ImageURL = req.ImageURL
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if err := database.DB.Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update product"})
	}
	return c.JSON(product)
}

func DeactivateProduct(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID format"})
	}

	var product models.Product
	if err := database.DB.First(&product, "id = ?", productID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}

	product.IsActive = false
	if err := database.DB.Save(&product).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate product"})
	}
	return c.JSON(fiber.Map{"message": "Product deactivated"})
}
