package routes

import (
	"github.com/adjeiboateng/brightkids_backend/handlers"
	"github.com/gofiber/fiber/v2"
)

func ShopRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/shop/products", handlers.ListProducts)
	api.Post("/shop/orders", handlers.CreateShopOrder)
}
