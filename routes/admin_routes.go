package routes

import (
	"github.com/adjeiboateng/brightkids_backend/handlers"
	"github.com/adjeiboateng/brightkids_backend/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/transactions", handlers.ListTransactions)
	admin.Get("/registrations/code-club", handlers.ListCodeClubRegistrations)
	admin.Get("/registrations/children", handlers.ListChildRegistrations)
	admin.Get("/registrations/children/export", handlers.ExportChildRegistrationsCSV)
	admin.Delete("/registrations/code-club/:registrationId", handlers.DeactivateCodeClubRegistration)
	admin.Delete("/registrations/children/:registrationId", handlers.DeactivateChildRegistration)
	admin.Get("/orders", handlers.ListShopOrders)
	admin.Get("/invoices", handlers.ListFeeInvoices)

	admin.Get("/prices", handlers.ListProgramPrices)
	admin.Post("/prices", handlers.CreateProgramPrice)
	admin.Put("/prices/:priceId", handlers.UpdateProgramPrice)
	admin.Delete("/prices/:priceId", handlers.DeleteProgramPrice)

	admin.Get("/discounts", handlers.ListDiscountCodes)
	admin.Post("/discounts", handlers.CreateDiscountCode)
	admin.Put("/discounts/:codeId", handlers.UpdateDiscountCode)

	admin.Post("/products", handlers.CreateProduct)
	admin.Put("/products/:productId", handlers.UpdateProduct)
	admin.Delete("/products/:productId", handlers.DeactivateProduct)
	admin.Get("/uploads/signature", handlers.GenerateUploadSignature)

	// The feed authenticates inside the socket with its first frame, so the
	// upgrade route sits outside the JWT middleware.
	api.Use("/admin/feed", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/admin/feed", websocket.New(handlers.ServeAdminFeed))
}
