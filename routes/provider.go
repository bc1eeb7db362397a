package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cityserv/cityserv/controllers"
	"github.com/cityserv/cityserv/middleware"
)

// SetupProviderRoutes configures the provider registration and booking
// management routes
func SetupProviderRoutes(app *fiber.App) {
	provider := app.Group("/provider", middleware.RequireUser())
	provider.Post("/register", controllers.RegisterProvider)
	provider.Get("/bookings", controllers.GetProviderBookings)
	provider.Patch("/bookings/:id/status", controllers.UpdateBookingStatus)
}
