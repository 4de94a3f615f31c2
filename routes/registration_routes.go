package routes

import (
	"github.com/adjeiboateng/brightkids_backend/handlers"
	"github.com/gofiber/fiber/v2"
)

func RegistrationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/registrations/code-club", handlers.CreateCodeClubRegistration)
	api.Post("/registrations/enrollment", handlers.CreateEnrollment)
	api.Post("/registrations/fees", handlers.CreateFeeRequest)

	api.Get("/registrations/lookup/:reference", handlers.LookupRegistration)
	api.Get("/registrations/:reference/qr", handlers.RegistrationQR)
}
