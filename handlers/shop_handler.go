package handlers

import (
	"errors"

	"github.com/adjeiboateng/brightkids_backend/database"
	"github.com/adjeiboateng/brightkids_backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopOrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=50"`
}

type ShopOrderRequest struct {
	CustomerName  string                 `json:"customer_name" validate:"required,min=2"`
	CustomerEmail string                 `json:"customer_email" validate:"required,email"`
	CustomerPhone string                 `json:"customer_phone" validate:"required,min=9"`
	Items         []ShopOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

func ListProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := database.DB.Where("is_active = ?", true).Order("name asc").Find(&products).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(products)
}

// CreateShopOrder prices the basket server-side from the product table and
// starts a checkout session. The order row itself is only written by the
// webhook handler once the charge is verified.
func CreateShopOrder(c *fiber.Ctx) error {
	var req ShopOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var subtotal int64
	items := make([]models.ShopOrderItemDetails, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product ID format"})
		}

		var product models.Product
		err = database.DB.Where("id = ? AND is_active = ?", productID, true).First(&product).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "One of the selected products is no longer available"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
		}
		if !product.InStock {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": product.Name + " is out of stock"})
		}

		subtotal += product.PricePesewas * int64(item.Quantity)
		items = append(items, models.ShopOrderItemDetails{
			ProductID:   product.ID.String(),
			ProductName: product.Name,
			UnitPesewas: product.PricePesewas,
			Quantity:    item.Quantity,
		})
	}

	details := models.TransactionDetails{
		ProgramType: models.ProgramShopOrder,
		ShopOrder: &models.ShopOrderDetails{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Items:         items,
		},
	}

	return startCheckout(c, req.CustomerEmail, subtotal, details)
}
