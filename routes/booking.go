package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cityserv/cityserv/controllers"
	"github.com/cityserv/cityserv/middleware"
)

// SetupBookingRoutes configures the customer booking routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/bookings", middleware.RequireUser())
	booking.Post("/", controllers.CreateBooking)
	booking.Get("/", controllers.GetMyBookings)
}
