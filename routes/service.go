package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cityserv/cityserv/controllers"
	"github.com/cityserv/cityserv/middleware"
)

// SetupServiceRoutes configures the service catalog routes
func SetupServiceRoutes(app *fiber.App) {
	service := app.Group("/services")
	service.Get("/", controllers.GetAllServices)
	service.Get("/:id", controllers.GetService)
	service.Post("/", middleware.RequireUser(), controllers.CreateService)
}
