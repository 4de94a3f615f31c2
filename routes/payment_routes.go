package routes

import (
	"github.com/adjeiboateng/brightkids_backend/handlers"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/payments/webhook", handlers.HandlePaystackWebhook)
	api.Get("/payments/status/:reference", handlers.GetTransactionStatus)
}
