package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cityserv/cityserv/controllers"
	"github.com/cityserv/cityserv/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/logout", controllers.Logout)

	// Protected routes
	auth.Get("/me", middleware.RequireUser(), controllers.Me)
	auth.Post("/me/image", middleware.RequireUser(), controllers.UpdateProfileImage)
}
